package region

// countries is the embedded ISO 3166-1 alpha-2 table. Continent
// assignments follow the usual seven-continent convention: Central
// America and the Caribbean count as North America, Russia as Europe,
// Turkey and the Caucasus as Asia.
var countries = map[string]countryInfo{
	"AD": {"Andorra", Europe},
	"AE": {"United Arab Emirates", Asia},
	"AF": {"Afghanistan", Asia},
	"AG": {"Antigua and Barbuda", NorthAmerica},
	"AI": {"Anguilla", NorthAmerica},
	"AL": {"Albania", Europe},
	"AM": {"Armenia", Asia},
	"AO": {"Angola", Africa},
	"AQ": {"Antarctica", Antarctica},
	"AR": {"Argentina", SouthAmerica},
	"AS": {"American Samoa", Oceania},
	"AT": {"Austria", Europe},
	"AU": {"Australia", Oceania},
	"AW": {"Aruba", NorthAmerica},
	"AX": {"Aland Islands", Europe},
	"AZ": {"Azerbaijan", Asia},
	"BA": {"Bosnia and Herzegovina", Europe},
	"BB": {"Barbados", NorthAmerica},
	"BD": {"Bangladesh", Asia},
	"BE": {"Belgium", Europe},
	"BF": {"Burkina Faso", Africa},
	"BG": {"Bulgaria", Europe},
	"BH": {"Bahrain", Asia},
	"BI": {"Burundi", Africa},
	"BJ": {"Benin", Africa},
	"BL": {"Saint Barthelemy", NorthAmerica},
	"BM": {"Bermuda", NorthAmerica},
	"BN": {"Brunei Darussalam", Asia},
	"BO": {"Bolivia, Plurinational State of", SouthAmerica},
	"BQ": {"Bonaire, Sint Eustatius and Saba", NorthAmerica},
	"BR": {"Brazil", SouthAmerica},
	"BS": {"Bahamas", NorthAmerica},
	"BT": {"Bhutan", Asia},
	"BW": {"Botswana", Africa},
	"BY": {"Belarus", Europe},
	"BZ": {"Belize", NorthAmerica},
	"CA": {"Canada", NorthAmerica},
	"CC": {"Cocos (Keeling) Islands", Asia},
	"CD": {"Congo, Democratic Republic of the", Africa},
	"CF": {"Central African Republic", Africa},
	"CG": {"Congo", Africa},
	"CH": {"Switzerland", Europe},
	"CI": {"Cote d'Ivoire", Africa},
	"CK": {"Cook Islands", Oceania},
	"CL": {"Chile", SouthAmerica},
	"CM": {"Cameroon", Africa},
	"CN": {"China", Asia},
	"CO": {"Colombia", SouthAmerica},
	"CR": {"Costa Rica", NorthAmerica},
	"CU": {"Cuba", NorthAmerica},
	"CV": {"Cabo Verde", Africa},
	"CW": {"Curacao", NorthAmerica},
	"CX": {"Christmas Island", Asia},
	"CY": {"Cyprus", Asia},
	"CZ": {"Czechia", Europe},
	"DE": {"Germany", Europe},
	"DJ": {"Djibouti", Africa},
	"DK": {"Denmark", Europe},
	"DM": {"Dominica", NorthAmerica},
	"DO": {"Dominican Republic", NorthAmerica},
	"DZ": {"Algeria", Africa},
	"EC": {"Ecuador", SouthAmerica},
	"EE": {"Estonia", Europe},
	"EG": {"Egypt", Africa},
	"EH": {"Western Sahara", Africa},
	"ER": {"Eritrea", Africa},
	"ES": {"Spain", Europe},
	"ET": {"Ethiopia", Africa},
	"FI": {"Finland", Europe},
	"FJ": {"Fiji", Oceania},
	"FK": {"Falkland Islands (Malvinas)", SouthAmerica},
	"FM": {"Micronesia, Federated States of", Oceania},
	"FO": {"Faroe Islands", Europe},
	"FR": {"France", Europe},
	"GA": {"Gabon", Africa},
	"GB": {"United Kingdom", Europe},
	"GD": {"Grenada", NorthAmerica},
	"GE": {"Georgia", Asia},
	"GF": {"French Guiana", SouthAmerica},
	"GG": {"Guernsey", Europe},
	"GH": {"Ghana", Africa},
	"GI": {"Gibraltar", Europe},
	"GL": {"Greenland", NorthAmerica},
	"GM": {"Gambia", Africa},
	"GN": {"Guinea", Africa},
	"GP": {"Guadeloupe", NorthAmerica},
	"GQ": {"Equatorial Guinea", Africa},
	"GR": {"Greece", Europe},
	"GT": {"Guatemala", NorthAmerica},
	"GU": {"Guam", Oceania},
	"GW": {"Guinea-Bissau", Africa},
	"GY": {"Guyana", SouthAmerica},
	"HK": {"Hong Kong", Asia},
	"HN": {"Honduras", NorthAmerica},
	"HR": {"Croatia", Europe},
	"HT": {"Haiti", NorthAmerica},
	"HU": {"Hungary", Europe},
	"ID": {"Indonesia", Asia},
	"IE": {"Ireland", Europe},
	"IL": {"Israel", Asia},
	"IM": {"Isle of Man", Europe},
	"IN": {"India", Asia},
	"IO": {"British Indian Ocean Territory", Asia},
	"IQ": {"Iraq", Asia},
	"IR": {"Iran, Islamic Republic of", Asia},
	"IS": {"Iceland", Europe},
	"IT": {"Italy", Europe},
	"JE": {"Jersey", Europe},
	"JM": {"Jamaica", NorthAmerica},
	"JO": {"Jordan", Asia},
	"JP": {"Japan", Asia},
	"KE": {"Kenya", Africa},
	"KG": {"Kyrgyzstan", Asia},
	"KH": {"Cambodia", Asia},
	"KI": {"Kiribati", Oceania},
	"KM": {"Comoros", Africa},
	"KN": {"Saint Kitts and Nevis", NorthAmerica},
	"KP": {"Korea, Democratic People's Republic of", Asia},
	"KR": {"Korea, Republic of", Asia},
	"KW": {"Kuwait", Asia},
	"KY": {"Cayman Islands", NorthAmerica},
	"KZ": {"Kazakhstan", Asia},
	"LA": {"Lao People's Democratic Republic", Asia},
	"LB": {"Lebanon", Asia},
	"LC": {"Saint Lucia", NorthAmerica},
	"LI": {"Liechtenstein", Europe},
	"LK": {"Sri Lanka", Asia},
	"LR": {"Liberia", Africa},
	"LS": {"Lesotho", Africa},
	"LT": {"Lithuania", Europe},
	"LU": {"Luxembourg", Europe},
	"LV": {"Latvia", Europe},
	"LY": {"Libya", Africa},
	"MA": {"Morocco", Africa},
	"MC": {"Monaco", Europe},
	"MD": {"Moldova, Republic of", Europe},
	"ME": {"Montenegro", Europe},
	"MF": {"Saint Martin (French part)", NorthAmerica},
	"MG": {"Madagascar", Africa},
	"MH": {"Marshall Islands", Oceania},
	"MK": {"North Macedonia", Europe},
	"ML": {"Mali", Africa},
	"MM": {"Myanmar", Asia},
	"MN": {"Mongolia", Asia},
	"MO": {"Macao", Asia},
	"MP": {"Northern Mariana Islands", Oceania},
	"MQ": {"Martinique", NorthAmerica},
	"MR": {"Mauritania", Africa},
	"MS": {"Montserrat", NorthAmerica},
	"MT": {"Malta", Europe},
	"MU": {"Mauritius", Africa},
	"MV": {"Maldives", Asia},
	"MW": {"Malawi", Africa},
	"MX": {"Mexico", NorthAmerica},
	"MY": {"Malaysia", Asia},
	"MZ": {"Mozambique", Africa},
	"NA": {"Namibia", Africa},
	"NC": {"New Caledonia", Oceania},
	"NE": {"Niger", Africa},
	"NF": {"Norfolk Island", Oceania},
	"NG": {"Nigeria", Africa},
	"NI": {"Nicaragua", NorthAmerica},
	"NL": {"Netherlands", Europe},
	"NO": {"Norway", Europe},
	"NP": {"Nepal", Asia},
	"NR": {"Nauru", Oceania},
	"NU": {"Niue", Oceania},
	"NZ": {"New Zealand", Oceania},
	"OM": {"Oman", Asia},
	"PA": {"Panama", NorthAmerica},
	"PE": {"Peru", SouthAmerica},
	"PF": {"French Polynesia", Oceania},
	"PG": {"Papua New Guinea", Oceania},
	"PH": {"Philippines", Asia},
	"PK": {"Pakistan", Asia},
	"PL": {"Poland", Europe},
	"PM": {"Saint Pierre and Miquelon", NorthAmerica},
	"PR": {"Puerto Rico", NorthAmerica},
	"PS": {"Palestine, State of", Asia},
	"PT": {"Portugal", Europe},
	"PW": {"Palau", Oceania},
	"PY": {"Paraguay", SouthAmerica},
	"QA": {"Qatar", Asia},
	"RE": {"Reunion", Africa},
	"RO": {"Romania", Europe},
	"RS": {"Serbia", Europe},
	"RU": {"Russian Federation", Europe},
	"RW": {"Rwanda", Africa},
	"SA": {"Saudi Arabia", Asia},
	"SB": {"Solomon Islands", Oceania},
	"SC": {"Seychelles", Africa},
	"SD": {"Sudan", Africa},
	"SE": {"Sweden", Europe},
	"SG": {"Singapore", Asia},
	"SH": {"Saint Helena, Ascension and Tristan da Cunha", Africa},
	"SI": {"Slovenia", Europe},
	"SK": {"Slovakia", Europe},
	"SL": {"Sierra Leone", Africa},
	"SM": {"San Marino", Europe},
	"SN": {"Senegal", Africa},
	"SO": {"Somalia", Africa},
	"SR": {"Suriname", SouthAmerica},
	"SS": {"South Sudan", Africa},
	"ST": {"Sao Tome and Principe", Africa},
	"SV": {"El Salvador", NorthAmerica},
	"SX": {"Sint Maarten (Dutch part)", NorthAmerica},
	"SY": {"Syrian Arab Republic", Asia},
	"SZ": {"Eswatini", Africa},
	"TC": {"Turks and Caicos Islands", NorthAmerica},
	"TD": {"Chad", Africa},
	"TG": {"Togo", Africa},
	"TH": {"Thailand", Asia},
	"TJ": {"Tajikistan", Asia},
	"TK": {"Tokelau", Oceania},
	"TL": {"Timor-Leste", Asia},
	"TM": {"Turkmenistan", Asia},
	"TN": {"Tunisia", Africa},
	"TO": {"Tonga", Oceania},
	"TR": {"Turkey", Asia},
	"TT": {"Trinidad and Tobago", NorthAmerica},
	"TV": {"Tuvalu", Oceania},
	"TW": {"Taiwan, Province of China", Asia},
	"TZ": {"Tanzania, United Republic of", Africa},
	"UA": {"Ukraine", Europe},
	"UG": {"Uganda", Africa},
	"US": {"United States", NorthAmerica},
	"UY": {"Uruguay", SouthAmerica},
	"UZ": {"Uzbekistan", Asia},
	"VA": {"Holy See (Vatican City State)", Europe},
	"VC": {"Saint Vincent and the Grenadines", NorthAmerica},
	"VE": {"Venezuela, Bolivarian Republic of", SouthAmerica},
	"VG": {"Virgin Islands, British", NorthAmerica},
	"VI": {"Virgin Islands, U.S.", NorthAmerica},
	"VN": {"Viet Nam", Asia},
	"VU": {"Vanuatu", Oceania},
	"WF": {"Wallis and Futuna", Oceania},
	"WS": {"Samoa", Oceania},
	"YE": {"Yemen", Asia},
	"YT": {"Mayotte", Africa},
	"ZA": {"South Africa", Africa},
	"ZM": {"Zambia", Africa},
	"ZW": {"Zimbabwe", Africa},
}
