package classifier

// Red flag keywords by emergency category. The detector only needs the
// flattened set; categories exist for maintenance.
var redFlagKeywords = map[string][]string{
	"cardiovascular": {
		"chest pain", "crushing chest pain", "chest pressure", "heart attack",
		"cardiac arrest", "palpitations with chest pain", "syncope", "fainting",
		"severe shortness of breath", "pulmonary edema", "cyanosis", "blue lips",
	},
	"neurological": {
		"severe headache", "worst headache of life", "thunderclap headache",
		"loss of consciousness", "unconscious", "coma", "seizure", "convulsions",
		"sudden weakness", "paralysis", "stroke symptoms", "facial drooping",
		"slurred speech", "confusion", "altered mental status", "vision loss",
		"double vision", "severe dizziness", "vertigo with neurological signs",
	},
	"respiratory": {
		"difficulty breathing", "shortness of breath", "can't breathe",
		"respiratory distress", "wheezing", "stridor", "choking",
		"pneumothorax", "collapsed lung", "severe asthma attack",
	},
	"gastrointestinal": {
		"severe abdominal pain", "appendicitis", "bowel obstruction",
		"severe vomiting", "hematemesis", "vomiting blood", "melena",
		"bright red blood in stool", "severe diarrhea", "dehydration",
	},
	"infectious": {
		"fever with rash", "meningitis", "sepsis", "high fever",
		"fever over 104", "fever with stiff neck", "petechial rash",
		"severe infection", "cellulitis", "necrotizing fasciitis",
	},
	"trauma": {
		"severe bleeding", "hemorrhage", "major trauma", "head injury",
		"spinal injury", "fracture", "dislocation", "severe burns",
		"penetrating wound", "gunshot", "stab wound",
	},
	"obstetric": {
		"pregnancy complications", "severe bleeding in pregnancy",
		"preeclampsia", "eclampsia", "placental abruption",
		"ectopic pregnancy", "miscarriage with heavy bleeding",
	},
	"psychiatric": {
		"suicidal thoughts", "suicide attempt", "homicidal thoughts",
		"psychosis", "severe depression", "manic episode",
		"substance overdose", "drug overdose", "alcohol poisoning",
	},
	"pediatric": {
		"infant fever", "febrile seizure", "difficulty breathing in child",
		"severe dehydration", "failure to thrive", "child abuse",
		"ingestion", "poisoning",
	},
	"endocrine": {
		"diabetic ketoacidosis", "severe hypoglycemia", "thyroid storm",
		"adrenal crisis", "severe hyperglycemia",
	},
}

// allRedFlags is the flattened keyword set searched at runtime.
var allRedFlags = flattenRedFlags()

func flattenRedFlags() []string {
	var out []string
	for _, category := range redFlagCategories {
		out = append(out, redFlagKeywords[category]...)
	}
	return out
}

// redFlagCategories fixes the flatten order so detector behavior does not
// depend on map iteration.
var redFlagCategories = []string{
	"cardiovascular", "neurological", "respiratory", "gastrointestinal",
	"infectious", "trauma", "obstetric", "psychiatric", "pediatric",
	"endocrine",
}
