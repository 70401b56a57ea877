package i18n

// categoryOrder keeps Categories deterministic.
var categoryOrder = []string{
	"Analgesics",
	"Antibiotics",
	"Antivirals",
	"Cardiovascular",
	"Dermatology",
	"Endocrinology",
	"Gastroenterology",
	"Neurology",
	"Oncology",
	"Respiratory",
	"Vitamins & Supplements",
	"Medical Devices",
}

var categoryTranslations = map[string]Text{
	"Analgesics": {
		EN: "Analgesics",
		UZ: "Og'riq qoldiruvchilar",
		RU: "Анальгетики",
		DE: "Analgetika",
	},
	"Antibiotics": {
		EN: "Antibiotics",
		UZ: "Antibiotiklar",
		RU: "Антибиотики",
		DE: "Antibiotika",
	},
	"Antivirals": {
		EN: "Antivirals",
		UZ: "Virusga qarshi vositalar",
		RU: "Противовирусные",
		DE: "Virostatika",
	},
	"Cardiovascular": {
		EN: "Cardiovascular",
		UZ: "Yurak-qon tomir",
		RU: "Сердечно-сосудистые",
		DE: "Herz-Kreislauf",
	},
	"Dermatology": {
		EN: "Dermatology",
		UZ: "Dermatologiya",
		RU: "Дерматология",
		DE: "Dermatologie",
	},
	"Endocrinology": {
		EN: "Endocrinology",
		UZ: "Endokrinologiya",
		RU: "Эндокринология",
		DE: "Endokrinologie",
	},
	"Gastroenterology": {
		EN: "Gastroenterology",
		UZ: "Gastroenterologiya",
		RU: "Гастроэнтерология",
		DE: "Gastroenterologie",
	},
	"Neurology": {
		EN: "Neurology",
		UZ: "Nevrologiya",
		RU: "Неврология",
		DE: "Neurologie",
	},
	"Oncology": {
		EN: "Oncology",
		UZ: "Onkologiya",
		RU: "Онкология",
		DE: "Onkologie",
	},
	"Respiratory": {
		EN: "Respiratory",
		UZ: "Nafas yo'llari",
		RU: "Респираторные",
		DE: "Atemwege",
	},
	"Vitamins & Supplements": {
		EN: "Vitamins & Supplements",
		UZ: "Vitaminlar va qo'shimchalar",
		RU: "Витамины и добавки",
		DE: "Vitamine & Nahrungsergänzung",
	},
	"Medical Devices": {
		EN: "Medical Devices",
		UZ: "Tibbiy asboblar",
		RU: "Медицинские изделия",
		DE: "Medizinprodukte",
	},
}

// TranslateCategory returns the display label of a canonical category key.
// Unknown keys come back unchanged.
func TranslateCategory(key string, lang Lang) string {
	labels, ok := categoryTranslations[key]
	if !ok {
		return key
	}
	if v := labels[lang]; v != "" {
		return v
	}
	return key
}

// Categories lists the canonical category keys.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
