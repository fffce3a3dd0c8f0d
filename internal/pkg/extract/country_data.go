package extract

// name;alpha-2;alpha-3;aliases... Aliases cover French, Spanish and Portuguese names,
// official long forms and misspellings seen in source feeds.
const countryData = `
Afghanistan;AF;AFG;islamic republic of afghanistan
Albania;AL;ALB;albanie
Algeria;DZ;DZA;algerie;argelia
Andorra;AD;AND
Angola;AO;AGO;republica de angola
Antigua and Barbuda;AG;ATG
Argentina;AR;ARG;argentine;republica argentina
Armenia;AM;ARM;armenie
Australia;AU;AUS;australie
Austria;AT;AUT;autriche;osterreich
Azerbaijan;AZ;AZE;azerbaidjan
Bahamas;BS;BHS;the bahamas;bahamas the
Bahrain;BH;BHR;bahrein
Bangladesh;BD;BGD
Barbados;BB;BRB;barbade
Belarus;BY;BLR;bielorussie
Belgium;BE;BEL;belgique;belgie
Belize;BZ;BLZ
Benin;BJ;BEN;republique du benin
Bhutan;BT;BTN;bhoutan
Bolivia;BO;BOL;bolivie;plurinational state of bolivia;estado plurinacional de bolivia
Bosnia and Herzegovina;BA;BIH;bosnie herzegovine;bosnia
Botswana;BW;BWA;bostwana
Brazil;BR;BRA;brasil;bresil
Brunei;BN;BRN;brunei darussalam
Bulgaria;BG;BGR;bulgarie
Burkina Faso;BF;BFA
Burundi;BI;BDI
Cambodia;KH;KHM;cambodge;kingdom of cambodia
Cameroon;CM;CMR;cameroun;republique du cameroun
Canada;CA;CAN
Cape Verde;CV;CPV;cabo verde;caboverde;cap vert
Central African Republic;CF;CAF;rca;republique centrafricaine;centrafrique;car
Chad;TD;TCD;tchad
Chile;CL;CHL;chili;republica de chile
China;CN;CHN;chine;people s republic of china;prc
Colombia;CO;COL;colombie;republica de colombia
Comoros;KM;COM;comores
Congo;CG;COG;republic of congo;republic of the congo;congo brazzaville;republique du congo;congo rep;congo republic of
Costa Rica;CR;CRI
Croatia;HR;HRV;croatie;hrvatska
Cuba;CU;CUB
Cyprus;CY;CYP;chypre
Czech Republic;CZ;CZE;czechia;republique tcheque
Democratic Republic of the Congo;CD;COD;drc;rdc;dr congo;d r congo;congo kinshasa;congo democratic republic of;republique democratique du congo;democratic republic of congo;congo dem rep;congo democratic republic
Denmark;DK;DNK;danemark
Djibouti;DJ;DJI
Dominica;DM;DMA;dominique
Dominican Republic;DO;DOM;republica dominicana;republique dominicaine
East Timor;TL;TLS;timor leste
Ecuador;EC;ECU;equateur
Egypt;EG;EGY;egypte;arab republic of egypt;egypt arab rep
El Salvador;SV;SLV;salvador
Equatorial Guinea;GQ;GNQ;guinee equatoriale;guinea ecuatorial
Eritrea;ER;ERI;erythree
Estonia;EE;EST;estonie
Eswatini;SZ;SWZ;swaziland
Ethiopia;ET;ETH;ethiopie
Fiji;FJ;FJI;fidji
Finland;FI;FIN;finlande
France;FR;FRA
Gabon;GA;GAB
Gambia;GM;GMB;the gambia;gambie;gambia the
Georgia;GE;GEO;georgie
Germany;DE;DEU;allemagne;deutschland;alemania
Ghana;GH;GHA
Greece;GR;GRC;grece
Grenada;GD;GRD;grenade
Guatemala;GT;GTM
Guinea;GN;GIN;guinee;guinea conakry
Guinea-Bissau;GW;GNB;guinee bissau;guine bissau
Guyana;GY;GUY
Haiti;HT;HTI
Honduras;HN;HND
Hungary;HU;HUN;hongrie
Iceland;IS;ISL;islande
India;IN;IND;inde
Indonesia;ID;IDN;indonesie
Iran;IR;IRN;iran islamic republic of;iran islamic rep
Iraq;IQ;IRQ;irak
Ireland;IE;IRL;irlande
Israel;IL;ISR
Italy;IT;ITA;italie;italia
Ivory Coast;CI;CIV;cote d ivoire;cote divoire;republique de cote d ivoire
Jamaica;JM;JAM;jamaique
Japan;JP;JPN;japon
Jordan;JO;JOR;jordanie
Kazakhstan;KZ;KAZ
Kenya;KE;KEN
Kiribati;KI;KIR
Kosovo;XK;XKX
Kuwait;KW;KWT;koweit
Kyrgyzstan;KG;KGZ;kyrgyz republic;kyrgyz;kirghizistan
Laos;LA;LAO;lao pdr;lao people s democratic republic
Latvia;LV;LVA;lettonie
Lebanon;LB;LBN;liban
Lesotho;LS;LSO
Liberia;LR;LBR
Libya;LY;LBY;libye
Liechtenstein;LI;LIE
Lithuania;LT;LTU;lituanie
Luxembourg;LU;LUX
Madagascar;MG;MDG
Malawi;MW;MWI
Malaysia;MY;MYS;malaisie
Maldives;MV;MDV
Mali;ML;MLI
Malta;MT;MLT;malte
Marshall Islands;MH;MHL
Mauritania;MR;MRT;mauritanie
Mauritius;MU;MUS;maurice
Mexico;MX;MEX;mexique
Micronesia;FM;FSM;federated states of micronesia;micronesia fed sts
Moldova;MD;MDA;moldavie;republic of moldova
Monaco;MC;MCO
Mongolia;MN;MNG;mongolie
Montenegro;ME;MNE
Morocco;MA;MAR;maroc;marruecos
Mozambique;MZ;MOZ;mocambique;republica de mocambique
Myanmar;MM;MMR;burma;birmanie
Namibia;;NAM;namibie
Nauru;NR;NRU
Nepal;NP;NPL
Netherlands;NL;NLD;pays bas;nederland;holland
New Zealand;NZ;NZL;nouvelle zelande
Nicaragua;NI;NIC
Niger;NE;NER
Nigeria;NG;NGA
North Korea;KP;PRK;democratic people s republic of korea;korea dem people s rep;korea dem rep;korea dpr;dprk
North Macedonia;MK;MKD;macedonia;republic of north macedonia
Norway;NO;NOR;norvege
Oman;OM;OMN
Pakistan;PK;PAK
Palau;PW;PLW
Palestine;PS;PSE;west bank and gaza;state of palestine
Panama;PA;PAN
Papua New Guinea;PG;PNG;papouasie nouvelle guinee
Paraguay;PY;PRY
Peru;PE;PER;perou;republica del peru
Philippines;PH;PHL
Poland;PL;POL;pologne;polska
Portugal;PT;PRT
Qatar;QA;QAT
Romania;RO;ROU;roumanie
Russia;RU;RUS;russian federation;russie
Rwanda;RW;RWA
Saint Kitts and Nevis;KN;KNA;st kitts and nevis
Saint Lucia;LC;LCA;st lucia;sainte lucie
Saint Vincent and the Grenadines;VC;VCT;st vincent and the grenadines
Samoa;WS;WSM
San Marino;SM;SMR
Sao Tome and Principe;ST;STP;sao tome e principe;sao tome et principe
Saudi Arabia;SA;SAU;arabie saoudite
Senegal;SN;SEN;republique du senegal
Serbia;RS;SRB;serbie
Seychelles;SC;SYC
Sierra Leone;SL;SLE
Singapore;SG;SGP;singapour
Slovakia;SK;SVK;slovaquie;slovak republic
Slovenia;SI;SVN;slovenie
Solomon Islands;SB;SLB;iles salomon
Somalia;SO;SOM;somalie
South Africa;ZA;ZAF;afrique du sud;rsa
South Korea;KR;KOR;korea;republic of korea;korea republic of;rok;coree du sud;korea rep
South Sudan;SS;SSD;soudan du sud;sudan del sur
Spain;ES;ESP;espana;espagne
Sri Lanka;LK;LKA
Sudan;SD;SDN;soudan
Suriname;SR;SUR
Sweden;SE;SWE;suede;sverige
Switzerland;CH;CHE;suisse;schweiz
Syria;SY;SYR;syrian arab republic;syrie
Taiwan;TW;TWN
Tajikistan;TJ;TJK;tadjikistan
Tanzania;TZ;TZA;tanzanie;united republic of tanzania
Thailand;TH;THA;thailande
Togo;TG;TGO;republique togolaise
Tonga;TO;TON
Trinidad and Tobago;TT;TTO;trinite et tobago
Tunisia;TN;TUN;tunisie
Turkey;TR;TUR;turkiye;turquie
Turkmenistan;TM;TKM
Tuvalu;TV;TUV
Uganda;UG;UGA;ouganda
Ukraine;UA;UKR
United Arab Emirates;AE;ARE;uae;u a e;emirats arabes unis
United Kingdom;GB;GBR;uk;u k;great britain;britain;england;royaume uni
United States;US;USA;u s a;u s;united states of america;america;etats unis;estados unidos
Uruguay;UY;URY
Uzbekistan;UZ;UZB;ouzbekistan
Vanuatu;VU;VUT
Vatican City;VA;VAT;holy see
Venezuela;VE;VEN;venezuela republica bolivariana de;venezuela rb
Vietnam;VN;VNM;viet nam;socialist republic of vietnam
Yemen;YE;YEM;yemen republic of;yemen rep
Zambia;ZM;ZMB;zambie
Zimbabwe;ZW;ZWE
Regional;;REG;region;regional projects
Multinational;;;multi national;multinational projects
`

// city -> country, used when a source only names a city.
var cityCountry = map[string]string{
	"abidjan":       "Ivory Coast",
	"accra":         "Ghana",
	"addis ababa":   "Ethiopia",
	"abuja":         "Nigeria",
	"algiers":       "Algeria",
	"bamako":        "Mali",
	"bangkok":       "Thailand",
	"beijing":       "China",
	"bogota":        "Colombia",
	"cairo":         "Egypt",
	"cape town":     "South Africa",
	"casablanca":    "Morocco",
	"conakry":       "Guinea",
	"cotonou":       "Benin",
	"dakar":         "Senegal",
	"dar es salaam": "Tanzania",
	"dhaka":         "Bangladesh",
	"freetown":      "Sierra Leone",
	"hanoi":         "Vietnam",
	"islamabad":     "Pakistan",
	"jakarta":       "Indonesia",
	"johannesburg":  "South Africa",
	"kabul":         "Afghanistan",
	"kampala":       "Uganda",
	"kathmandu":     "Nepal",
	"khartoum":      "Sudan",
	"kigali":        "Rwanda",
	"kinshasa":      "Democratic Republic of the Congo",
	"lagos":         "Nigeria",
	"lilongwe":      "Malawi",
	"lima":          "Peru",
	"lome":          "Togo",
	"luanda":        "Angola",
	"lusaka":        "Zambia",
	"manila":        "Philippines",
	"maputo":        "Mozambique",
	"monrovia":      "Liberia",
	"nairobi":       "Kenya",
	"new delhi":     "India",
	"niamey":        "Niger",
	"nouakchott":    "Mauritania",
	"ouagadougou":   "Burkina Faso",
	"phnom penh":    "Cambodia",
	"rabat":         "Morocco",
	"tashkent":      "Uzbekistan",
	"tegucigalpa":   "Honduras",
	"tunis":         "Tunisia",
	"ulaanbaatar":   "Mongolia",
	"windhoek":      "Namibia",
	"yangon":        "Myanmar",
	"yaounde":       "Cameroon",
}

// NUTS level-0 prefixes that differ from ISO alpha-2.
var nutsOverrides = map[string]string{
	"EL": "Greece",
	"UK": "United Kingdom",
}

var spanishSpeaking = map[string]struct{}{
	"Argentina": {}, "Bolivia": {}, "Chile": {}, "Colombia": {}, "Costa Rica": {},
	"Cuba": {}, "Dominican Republic": {}, "Ecuador": {}, "El Salvador": {},
	"Equatorial Guinea": {}, "Guatemala": {}, "Honduras": {}, "Mexico": {},
	"Nicaragua": {}, "Panama": {}, "Paraguay": {}, "Peru": {}, "Spain": {},
	"Uruguay": {}, "Venezuela": {},
}
