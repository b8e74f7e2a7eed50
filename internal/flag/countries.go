package flag

// countryCodes maps normalized country display names to ISO 3166-1 alpha-2.
// Names follow the worldcities dataset spelling; common aliases are included.
var countryCodes = map[string]string{
	"afghanistan":                                   "AF",
	"aland islands":                                 "AX",
	"albania":                                       "AL",
	"algeria":                                       "DZ",
	"american samoa":                                "AS",
	"andorra":                                       "AD",
	"angola":                                        "AO",
	"anguilla":                                      "AI",
	"antigua and barbuda":                           "AG",
	"argentina":                                     "AR",
	"armenia":                                       "AM",
	"aruba":                                         "AW",
	"australia":                                     "AU",
	"austria":                                       "AT",
	"azerbaijan":                                    "AZ",
	"bahamas, the":                                  "BS",
	"bahamas":                                       "BS",
	"bahrain":                                       "BH",
	"bangladesh":                                    "BD",
	"barbados":                                      "BB",
	"belarus":                                       "BY",
	"belgium":                                       "BE",
	"belize":                                        "BZ",
	"benin":                                         "BJ",
	"bermuda":                                       "BM",
	"bhutan":                                        "BT",
	"bolivia":                                       "BO",
	"bosnia and herzegovina":                        "BA",
	"botswana":                                      "BW",
	"brazil":                                        "BR",
	"british virgin islands":                        "VG",
	"brunei":                                        "BN",
	"bulgaria":                                      "BG",
	"burkina faso":                                  "BF",
	"burma":                                         "MM",
	"burundi":                                       "BI",
	"cabo verde":                                    "CV",
	"cape verde":                                    "CV",
	"cambodia":                                      "KH",
	"cameroon":                                      "CM",
	"canada":                                        "CA",
	"cayman islands":                                "KY",
	"central african republic":                      "CF",
	"chad":                                          "TD",
	"chile":                                         "CL",
	"china":                                         "CN",
	"christmas island":                              "CX",
	"colombia":                                      "CO",
	"comoros":                                       "KM",
	"congo (brazzaville)":                           "CG",
	"congo (kinshasa)":                              "CD",
	"republic of the congo":                         "CG",
	"democratic republic of the congo":              "CD",
	"cook islands":                                  "CK",
	"costa rica":                                    "CR",
	"côte d'ivoire":                                 "CI",
	"cote d'ivoire":                                 "CI",
	"ivory coast":                                   "CI",
	"croatia":                                       "HR",
	"cuba":                                          "CU",
	"curaçao":                                       "CW",
	"curacao":                                       "CW",
	"cyprus":                                        "CY",
	"czechia":                                       "CZ",
	"czech republic":                                "CZ",
	"denmark":                                       "DK",
	"djibouti":                                      "DJ",
	"dominica":                                      "DM",
	"dominican republic":                            "DO",
	"ecuador":                                       "EC",
	"egypt":                                         "EG",
	"el salvador":                                   "SV",
	"equatorial guinea":                             "GQ",
	"eritrea":                                       "ER",
	"estonia":                                       "EE",
	"eswatini":                                      "SZ",
	"swaziland":                                     "SZ",
	"ethiopia":                                      "ET",
	"falkland islands (islas malvinas)":             "FK",
	"falkland islands":                              "FK",
	"faroe islands":                                 "FO",
	"fiji":                                          "FJ",
	"finland":                                       "FI",
	"france":                                        "FR",
	"french guiana":                                 "GF",
	"french polynesia":                              "PF",
	"gabon":                                         "GA",
	"gambia, the":                                   "GM",
	"gambia":                                        "GM",
	"georgia":                                       "GE",
	"germany":                                       "DE",
	"ghana":                                         "GH",
	"gibraltar":                                     "GI",
	"greece":                                        "GR",
	"greenland":                                     "GL",
	"grenada":                                       "GD",
	"guadeloupe":                                    "GP",
	"guam":                                          "GU",
	"guatemala":                                     "GT",
	"guernsey":                                      "GG",
	"guinea":                                        "GN",
	"guinea-bissau":                                 "GW",
	"guyana":                                        "GY",
	"haiti":                                         "HT",
	"honduras":                                      "HN",
	"hong kong":                                     "HK",
	"hungary":                                       "HU",
	"iceland":                                       "IS",
	"india":                                         "IN",
	"indonesia":                                     "ID",
	"iran":                                          "IR",
	"iraq":                                          "IQ",
	"ireland":                                       "IE",
	"isle of man":                                   "IM",
	"israel":                                        "IL",
	"italy":                                         "IT",
	"jamaica":                                       "JM",
	"japan":                                         "JP",
	"jersey":                                        "JE",
	"jordan":                                        "JO",
	"kazakhstan":                                    "KZ",
	"kenya":                                         "KE",
	"kiribati":                                      "KI",
	"korea, north":                                  "KP",
	"north korea":                                   "KP",
	"korea, south":                                  "KR",
	"south korea":                                   "KR",
	"kosovo":                                        "XK",
	"kuwait":                                        "KW",
	"kyrgyzstan":                                    "KG",
	"laos":                                          "LA",
	"latvia":                                        "LV",
	"lebanon":                                       "LB",
	"lesotho":                                       "LS",
	"liberia":                                       "LR",
	"libya":                                         "LY",
	"liechtenstein":                                 "LI",
	"lithuania":                                     "LT",
	"luxembourg":                                    "LU",
	"macau":                                         "MO",
	"macao":                                         "MO",
	"madagascar":                                    "MG",
	"malawi":                                        "MW",
	"malaysia":                                      "MY",
	"maldives":                                      "MV",
	"mali":                                          "ML",
	"malta":                                         "MT",
	"marshall islands":                              "MH",
	"martinique":                                    "MQ",
	"mauritania":                                    "MR",
	"mauritius":                                     "MU",
	"mayotte":                                       "YT",
	"mexico":                                        "MX",
	"micronesia, federated states of":               "FM",
	"micronesia":                                    "FM",
	"moldova":                                       "MD",
	"monaco":                                        "MC",
	"mongolia":                                      "MN",
	"montenegro":                                    "ME",
	"montserrat":                                    "MS",
	"morocco":                                       "MA",
	"mozambique":                                    "MZ",
	"myanmar":                                       "MM",
	"namibia":                                       "NA",
	"nauru":                                         "NR",
	"nepal":                                         "NP",
	"netherlands":                                   "NL",
	"new caledonia":                                 "NC",
	"new zealand":                                   "NZ",
	"nicaragua":                                     "NI",
	"niger":                                         "NE",
	"nigeria":                                       "NG",
	"niue":                                          "NU",
	"norfolk island":                                "NF",
	"north macedonia":                               "MK",
	"macedonia":                                     "MK",
	"northern mariana islands":                      "MP",
	"norway":                                        "NO",
	"oman":                                          "OM",
	"pakistan":                                      "PK",
	"palau":                                         "PW",
	"palestine":                                     "PS",
	"west bank":                                     "PS",
	"gaza strip":                                    "PS",
	"panama":                                        "PA",
	"papua new guinea":                              "PG",
	"paraguay":                                      "PY",
	"peru":                                          "PE",
	"philippines":                                   "PH",
	"pitcairn islands":                              "PN",
	"poland":                                        "PL",
	"portugal":                                      "PT",
	"puerto rico":                                   "PR",
	"qatar":                                         "QA",
	"reunion":                                       "RE",
	"réunion":                                       "RE",
	"romania":                                       "RO",
	"russia":                                        "RU",
	"russian federation":                            "RU",
	"rwanda":                                        "RW",
	"saint barthelemy":                              "BL",
	"saint helena, ascension, and tristan da cunha": "SH",
	"saint kitts and nevis":                         "KN",
	"saint lucia":                                   "LC",
	"saint martin":                                  "MF",
	"saint pierre and miquelon":                     "PM",
	"saint vincent and the grenadines":              "VC",
	"samoa":                                         "WS",
	"san marino":                                    "SM",
	"sao tome and principe":                         "ST",
	"saudi arabia":                                  "SA",
	"senegal":                                       "SN",
	"serbia":                                        "RS",
	"seychelles":                                    "SC",
	"sierra leone":                                  "SL",
	"singapore":                                     "SG",
	"sint maarten":                                  "SX",
	"slovakia":                                      "SK",
	"slovenia":                                      "SI",
	"solomon islands":                               "SB",
	"somalia":                                       "SO",
	"south africa":                                  "ZA",
	"south georgia and south sandwich islands":      "GS",
	"south sudan":                                   "SS",
	"spain":                                         "ES",
	"sri lanka":                                     "LK",
	"sudan":                                         "SD",
	"suriname":                                      "SR",
	"svalbard":                                      "SJ",
	"sweden":                                        "SE",
	"switzerland":                                   "CH",
	"syria":                                         "SY",
	"taiwan":                                        "TW",
	"tajikistan":                                    "TJ",
	"tanzania":                                      "TZ",
	"thailand":                                      "TH",
	"timor-leste":                                   "TL",
	"east timor":                                    "TL",
	"togo":                                          "TG",
	"tonga":                                         "TO",
	"trinidad and tobago":                           "TT",
	"tunisia":                                       "TN",
	"turkey":                                        "TR",
	"türkiye":                                       "TR",
	"turkiye":                                       "TR",
	"turkmenistan":                                  "TM",
	"turks and caicos islands":                      "TC",
	"tuvalu":                                        "TV",
	"uganda":                                        "UG",
	"ukraine":                                       "UA",
	"united arab emirates":                          "AE",
	"uae":                                           "AE",
	"united kingdom":                                "GB",
	"uk":                                            "GB",
	"great britain":                                 "GB",
	"united states":                                 "US",
	"united states of america":                      "US",
	"usa":                                           "US",
	"uruguay":                                       "UY",
	"uzbekistan":                                    "UZ",
	"vanuatu":                                       "VU",
	"vatican city":                                  "VA",
	"holy see":                                      "VA",
	"venezuela":                                     "VE",
	"vietnam":                                       "VN",
	"viet nam":                                      "VN",
	"u.s. virgin islands":                           "VI",
	"virgin islands, u.s.":                          "VI",
	"wallis and futuna":                             "WF",
	"western sahara":                                "EH",
	"yemen":                                         "YE",
	"zambia":                                        "ZM",
	"zimbabwe":                                      "ZW",
}
