package http

// Specialty is one entry of the doctor filter catalogue.
type Specialty struct {
	Key string `json:"key"`
	EN  string `json:"en"`
	BN  string `json:"bn"`
}

var specialties = []Specialty{
	{Key: "general_physician", EN: "General Physician", BN: "সাধারণ চিকিৎসক"},
	{Key: "gynecologist", EN: "Gynecologist", BN: "স্ত্রীরোগ বিশেষজ্ঞ"},
	{Key: "pediatrician", EN: "Pediatrician", BN: "শিশু বিশেষজ্ঞ"},
	{Key: "cardiologist", EN: "Cardiologist", BN: "হৃদরোগ বিশেষজ্ঞ"},
	{Key: "dermatologist", EN: "Dermatologist", BN: "চর্মরোগ বিশেষজ্ঞ"},
	{Key: "orthopedic", EN: "Orthopedic Surgeon", BN: "অর্থোপেডিক সার্জন"},
	{Key: "neurologist", EN: "Neurologist", BN: "নিউরোলজিস্ট"},
	{Key: "psychiatrist", EN: "Psychiatrist", BN: "মনোরোগ বিশেষজ্ঞ"},
	{Key: "psychologist", EN: "Psychologist", BN: "মনোবিজ্ঞানী"},
	{Key: "ent", EN: "ENT Specialist", BN: "নাক-কান-গলা বিশেষজ্ঞ"},
	{Key: "dentist", EN: "Dentist", BN: "দন্ত চিকিৎসক"},
	{Key: "urologist", EN: "Urologist", BN: "ইউরোলজিস্ট"},
	{Key: "endocrinologist", EN: "Endocrinologist", BN: "হরমোন বিশেষজ্ঞ"},
	{Key: "ophthalmologist", EN: "Eye Specialist", BN: "চোখের ডাক্তার"},
	{Key: "gastroenterologist", EN: "Gastroenterologist", BN: "গ্যাস্ট্রোএন্টেরোলজিস্ট"},
	{Key: "oncologist", EN: "Oncologist", BN: "ক্যান্সার বিশেষজ্ঞ"},
	{Key: "nephrologist", EN: "Nephrologist", BN: "কিডনি বিশেষজ্ঞ"},
	{Key: "pulmonologist", EN: "Pulmonologist", BN: "বক্ষব্যাধি বিশেষজ্ঞ"},
	{Key: "nutritionist", EN: "Nutritionist", BN: "পুষ্টিবিদ"},
	{Key: "physiotherapist", EN: "Physiotherapist", BN: "ফিজিওথেরাপিস্ট"},
	{Key: "hematologist", EN: "Hematologist", BN: "রক্তরোগ বিশেষজ্ঞ"},
	{Key: "rheumatologist", EN: "Rheumatologist", BN: "বাতরোগ বিশেষজ্ঞ"},
	{Key: "surgeon", EN: "General Surgeon", BN: "জেনারেল সার্জন"},
	{Key: "plastic_surgeon", EN: "Plastic Surgeon", BN: "প্লাস্টিক সার্জন"},
	{Key: "fertility", EN: "Fertility Specialist", BN: "বন্ধ্যাত্ব বিশেষজ্ঞ"},
	{Key: "critical_care", EN: "Critical Care Specialist", BN: "ক্রিটিক্যাল কেয়ার বিশেষজ্ঞ"},
}
