package service

// stateNames 州/邦静态表（下拉按此顺序展示）
var stateNames = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Andaman and Nicobar Islands",
	"Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Delhi",
	"Jammu and Kashmir",
	"Ladakh",
	"Lakshadweep",
	"Puducherry",
}

// countryNames 国家静态表
var countryNames = []string{
	"India",
	"Australia",
	"Bangladesh",
	"Bhutan",
	"Canada",
	"China",
	"France",
	"Germany",
	"Indonesia",
	"Italy",
	"Japan",
	"Malaysia",
	"Maldives",
	"Myanmar",
	"Nepal",
	"Netherlands",
	"New Zealand",
	"Oman",
	"Pakistan",
	"Philippines",
	"Qatar",
	"Russia",
	"Saudi Arabia",
	"Singapore",
	"South Africa",
	"South Korea",
	"Spain",
	"Sri Lanka",
	"Switzerland",
	"Thailand",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Vietnam",
}
