package core

// keywords.go holds the static trigger tables and phrase lists driving turn
// classification. All of them are initialized once and never mutated;
// triggers are lower-case and matched as substrings of lower-cased text.

// emergencyTriggers maps an emergency condition phrase to the specialization
// codes that should handle it.
var emergencyTriggers = map[string][]string{
	"heart attack":             {"CARDIOLOGIST", "ELECTROPHYSIOLOGIST", "HEART FAILURE"},
	"chest pain":               {"CARDIOLOGIST", "ELECTROPHYSIOLOGIST", "HEART FAILURE"},
	"stroke":                   {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"shortness of breath":      {"PULMONOLOGIST", "CARDIOLOGIST"},
	"difficulty breathing":     {"PULMONOLOGIST", "CARDIOLOGIST"},
	"loss of consciousness":    {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST", "EMERGENCY MEDICINE"},
	"seizures":                 {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"sudden vision loss":       {"OPHTHALMOLOGIST", "NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"head trauma":              {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST", "NEUROSURGEON"},
	"severe bleeding":          {"EMERGENCY MEDICINE", "GENERAL SURGEON"},
	"high fever with confusion": {"INFECTIOUS DISEASE", "NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"vomiting blood":           {"GASTROENTEROLOGIST", "EMERGENCY MEDICINE"},
	"blood in stool":           {"GASTROENTEROLOGIST"},
	"abdominal pain":           {"GASTROENTEROLOGIST", "GENERAL SURGEON"},
	"sudden paralysis":         {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"breathing stopped":        {"EMERGENCY MEDICINE"},
	"severe allergic reaction": {"ALLERGIST", "EMERGENCY MEDICINE"},
	"severe burns":             {"PLASTIC SURGEON", "EMERGENCY MEDICINE"},
	"poisoning":                {"TOXICOLOGIST", "EMERGENCY MEDICINE"},
	"snake bite":               {"TOXICOLOGIST", "EMERGENCY MEDICINE"},
	"drug overdose":            {"TOXICOLOGIST", "EMERGENCY MEDICINE"},
	"wheezing with blue skin":  {"PULMONOLOGIST", "EMERGENCY MEDICINE"},
	"palpitations with dizziness": {"CARDIOLOGIST", "ELECTROPHYSIOLOGIST"},
	"uncontrolled tremors":     {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"speech difficulty":        {"NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"fracture with bone exposed": {"ORTHOPEDIC SURGEON"},
	"major accident injury":    {"EMERGENCY MEDICINE", "TRAUMA SURGEON"},
	"labor pain (unexpected)":  {"GYNECOLOGIST", "OBSTETRICIAN"},
	"preterm labor":            {"OBSTETRICIAN"},
	"newborn not breathing":    {"PEDIATRICIAN", "EMERGENCY MEDICINE"},
	"meningitis":               {"INFECTIOUS DISEASE", "NEUROLOGIST", "PAEDIATRIC NEUROLOGIST"},
	"pulmonary embolism":       {"PULMONOLOGIST", "CARDIOLOGIST"},
	"deep vein thrombosis":     {"VASCULAR SURGEON", "INTERNAL MEDICINE"},
	"internal bleeding":        {"EMERGENCY MEDICINE", "GENERAL SURGEON"},
	"heat stroke":              {"EMERGENCY MEDICINE"},
}

// diagnosisTriggers maps common diagnosis phrases, as they tend to appear in
// the assistant's "based on your symptoms" sentence, to specializations.
var diagnosisTriggers = map[string][]string{
	"flu":                     {"GENERAL PHYSICIAN", "INFECTIOUS DISEASE"},
	"common cold":             {"GENERAL PHYSICIAN"},
	"migraine":                {"NEUROLOGIST"},
	"headache":                {"NEUROLOGIST", "GENERAL PHYSICIAN"},
	"asthma":                  {"PULMONOLOGIST", "ALLERGIST"},
	"pneumonia":               {"PULMONOLOGIST", "INFECTIOUS DISEASE"},
	"bronchitis":              {"PULMONOLOGIST"},
	"tuberculosis":            {"PULMONOLOGIST", "INFECTIOUS DISEASE"},
	"hypertension":            {"CARDIOLOGIST", "INTERNAL MEDICINE"},
	"high blood pressure":     {"CARDIOLOGIST", "INTERNAL MEDICINE"},
	"angina":                  {"CARDIOLOGIST"},
	"arrhythmia":              {"CARDIOLOGIST", "ELECTROPHYSIOLOGIST"},
	"diabetes":                {"ENDOCRINOLOGIST"},
	"thyroid":                 {"ENDOCRINOLOGIST"},
	"gastritis":               {"GASTROENTEROLOGIST"},
	"acid reflux":             {"GASTROENTEROLOGIST"},
	"gerd":                    {"GASTROENTEROLOGIST"},
	"ulcer":                   {"GASTROENTEROLOGIST"},
	"food poisoning":          {"GASTROENTEROLOGIST", "INFECTIOUS DISEASE"},
	"hepatitis":               {"HEPATOLOGIST", "GASTROENTEROLOGIST"},
	"jaundice":                {"HEPATOLOGIST", "GASTROENTEROLOGIST"},
	"appendicitis":            {"GENERAL SURGEON"},
	"hernia":                  {"GENERAL SURGEON"},
	"urinary tract infection": {"UROLOGIST"},
	"kidney stone":            {"UROLOGIST", "NEPHROLOGIST"},
	"kidney infection":        {"NEPHROLOGIST", "UROLOGIST"},
	"arthritis":               {"RHEUMATOLOGIST", "ORTHOPEDIC SURGEON"},
	"back pain":               {"ORTHOPEDIC SURGEON", "NEUROLOGIST"},
	"sprain":                  {"ORTHOPEDIC SURGEON"},
	"fracture":                {"ORTHOPEDIC SURGEON"},
	"eczema":                  {"DERMATOLOGIST"},
	"psoriasis":               {"DERMATOLOGIST"},
	"acne":                    {"DERMATOLOGIST"},
	"skin rash":               {"DERMATOLOGIST", "ALLERGIST"},
	"allergy":                 {"ALLERGIST"},
	"anemia":                  {"HEMATOLOGIST"},
	"depression":              {"PSYCHIATRIST"},
	"anxiety":                 {"PSYCHIATRIST"},
	"insomnia":                {"PSYCHIATRIST", "NEUROLOGIST"},
	"ear infection":           {"ENT SPECIALIST"},
	"sinusitis":               {"ENT SPECIALIST"},
	"tonsillitis":             {"ENT SPECIALIST"},
	"sore throat":             {"ENT SPECIALIST", "GENERAL PHYSICIAN"},
	"conjunctivitis":          {"OPHTHALMOLOGIST"},
	"cataract":                {"OPHTHALMOLOGIST"},
	"dengue":                  {"INFECTIOUS DISEASE"},
	"malaria":                 {"INFECTIOUS DISEASE"},
	"typhoid":                 {"INFECTIOUS DISEASE"},
	"covid":                   {"INFECTIOUS DISEASE", "PULMONOLOGIST"},
	"chickenpox":              {"INFECTIOUS DISEASE", "PEDIATRICIAN"},
	"measles":                 {"INFECTIOUS DISEASE", "PEDIATRICIAN"},
	"pregnancy":               {"GYNECOLOGIST", "OBSTETRICIAN"},
	"menstrual":               {"GYNECOLOGIST"},
}

// criticalSymptoms gate the emergency branch independently of the trigger
// table.
var criticalSymptoms = []string{
	"heart attack",
	"stroke",
	"chest pain",
	"shortness of breath",
	"difficulty breathing",
}

// followupPhrases mark an assistant turn as a clarifying question rather
// than a triage conclusion.
var followupPhrases = []string{
	"how long",
	"can you describe",
	"are you experiencing",
	"any other symptoms",
	"please tell me more",
	"could you specify",
	"could you explain",
}

// negativeReplies must match the trimmed user message exactly.
var negativeReplies = []string{"no", "none", "not really", "nope", "nothing"}

// affirmativeWords are matched as substrings of the lower-cased user message.
var affirmativeWords = []string{
	"yes", "yeah", "yep", "please", "sure", "ok", "okay",
	"recommend a doctor", "need doctor",
}

// EmergencyTriggers exposes the emergency keyword table for resolution.
func EmergencyTriggers() map[string][]string { return emergencyTriggers }

// DiagnosisTriggers exposes the diagnosis keyword table for resolution.
func DiagnosisTriggers() map[string][]string { return diagnosisTriggers }
