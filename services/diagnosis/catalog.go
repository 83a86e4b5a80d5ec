package diagnosis

// labParam is one catalog entry: a parameter name as it appears in report
// text (underscores stand for spaces) and its inclusive normal range.
type labParam struct {
	Name string
	Low  float64
	High float64
}

// labCatalog covers the panels of the supported report types: CBC, LFT, KFT,
// diabetes, thyroid, lipid, electrolytes, iron/vitamins, inflammatory,
// cardiac, coagulation, urine and hormonal.
var labCatalog = []labParam{
	// CBC
	{"hemoglobin", 12, 16},
	{"rbc", 4.2, 6.1},
	{"wbc", 4000, 11000},
	{"platelets", 1.5, 4.5},
	{"hematocrit", 36, 46},
	{"mcv", 80, 100},
	{"mch", 27, 33},
	{"mchc", 32, 36},
	{"rdw", 11, 15},
	{"neutrophils", 40, 75},
	{"lymphocytes", 20, 45},
	{"monocytes", 2, 10},
	{"eosinophils", 1, 6},
	{"basophils", 0, 2},

	// LFT
	{"bilirubin_total", 0.3, 1.2},
	{"bilirubin_direct", 0.0, 0.3},
	{"bilirubin_indirect", 0.2, 0.9},
	{"sgot", 0, 40},
	{"sgpt", 0, 40},
	{"alp", 44, 147},
	{"albumin", 3.5, 5.5},
	{"globulin", 2.0, 3.5},

	// KFT
	{"creatinine", 0.6, 1.3},
	{"urea", 15, 40},
	{"uric_acid", 3.4, 7.0},

	// Diabetes
	{"fasting_glucose", 70, 100},
	{"postprandial_glucose", 70, 140},
	{"random_glucose", 70, 140},
	{"hba1c", 4.0, 5.6},

	// Thyroid
	{"tsh", 0.4, 4.5},
	{"t3", 80, 200},
	{"t4", 5.0, 12.0},

	// Lipid
	{"total_cholesterol", 0, 200},
	{"ldl", 0, 130},
	{"hdl", 40, 60},
	{"triglycerides", 0, 150},
	{"vldl", 5, 40},

	// Electrolytes
	{"sodium", 135, 145},
	{"potassium", 3.5, 5.0},
	{"chloride", 98, 106},
	{"calcium", 8.5, 10.5},
	{"magnesium", 1.7, 2.4},
	{"phosphorus", 2.5, 4.5},

	// Iron & vitamins
	{"serum_iron", 60, 170},
	{"ferritin", 30, 400},
	{"tibc", 240, 450},
	{"vitamin_b12", 200, 900},
	{"vitamin_d", 20, 50},
	{"folate", 2.7, 17},

	// Inflammatory
	{"crp", 0, 5},
	{"esr", 0, 20},

	// Cardiac
	{"troponin", 0, 0.04},
	{"ck_mb", 0, 25},
	{"bnp", 0, 100},

	// Coagulation
	{"inr", 0.8, 1.2},
	{"pt", 11, 13.5},
	{"aptt", 25, 35},

	// Urine
	{"urine_protein", 0, 0},
	{"urine_sugar", 0, 0},
	{"urine_ketones", 0, 0},

	// Hormonal
	{"prolactin", 4, 23},
	{"cortisol", 5, 25},
	{"testosterone", 300, 1000},
	{"estrogen", 30, 400},
}

// Expected statuses a rule condition may require. StatusAbnormal matches any
// status except normal.
const (
	StatusLow      = "low"
	StatusHigh     = "high"
	StatusNormal   = "normal"
	StatusAbnormal = "abnormal"
)

// Condition is one (parameter, expected status) pair of a rule.
type Condition struct {
	Param    string
	Expected string
}

// Rule names a disease pattern and the conditions that must all hold.
type Rule struct {
	Disease    string
	Conditions []Condition
}

// ruleCatalog is evaluated in definition order; the first matching rule is
// reported as most likely.
var ruleCatalog = []Rule{
	// CBC
	{"Anemia", []Condition{{"hemoglobin", StatusLow}}},
	{"Iron Deficiency Anemia", []Condition{{"hemoglobin", StatusLow}, {"ferritin", StatusLow}}},
	{"Megaloblastic Anemia", []Condition{{"mcv", StatusHigh}, {"vitamin_b12", StatusLow}}},
	{"Normocytic Anemia", []Condition{{"hemoglobin", StatusLow}, {"mcv", StatusNormal}}},
	{"Polycythemia", []Condition{{"hematocrit", StatusHigh}}},
	{"Leukocytosis", []Condition{{"wbc", StatusHigh}}},
	{"Leukopenia", []Condition{{"wbc", StatusLow}}},
	{"Neutrophilia", []Condition{{"neutrophils", StatusHigh}}},
	{"Neutropenia", []Condition{{"neutrophils", StatusLow}}},
	{"Lymphocytosis", []Condition{{"lymphocytes", StatusHigh}}},
	{"Lymphopenia", []Condition{{"lymphocytes", StatusLow}}},
	{"Thrombocytopenia", []Condition{{"platelets", StatusLow}}},
	{"Thrombocytosis", []Condition{{"platelets", StatusHigh}}},
	{"Pancytopenia Pattern", []Condition{{"wbc", StatusLow}, {"platelets", StatusLow}, {"hemoglobin", StatusLow}}},
	{"Eosinophilia", []Condition{{"eosinophils", StatusHigh}}},

	// LFT
	{"Jaundice", []Condition{{"bilirubin_total", StatusHigh}}},
	{"Hepatitis Pattern", []Condition{{"sgpt", StatusHigh}, {"sgot", StatusHigh}}},
	{"Cholestasis", []Condition{{"alp", StatusHigh}}},
	{"Alcoholic Liver Injury", []Condition{{"sgot", StatusHigh}, {"sgpt", StatusHigh}}},
	{"Acute Hepatitis", []Condition{{"sgpt", StatusHigh}}},
	{"Chronic Liver Disease", []Condition{{"albumin", StatusLow}}},
	{"Hypoalbuminemia", []Condition{{"albumin", StatusLow}}},
	{"Direct Hyperbilirubinemia", []Condition{{"bilirubin_direct", StatusHigh}}},
	{"Indirect Hyperbilirubinemia", []Condition{{"bilirubin_indirect", StatusHigh}}},
	{"Fatty Liver Risk Pattern", []Condition{{"triglycerides", StatusHigh}}},
	{"Liver Synthetic Dysfunction", []Condition{{"albumin", StatusLow}, {"inr", StatusHigh}}},
	{"Hepatic Inflammation", []Condition{{"crp", StatusHigh}}},

	// KFT
	{"Acute Kidney Injury", []Condition{{"creatinine", StatusHigh}, {"urea", StatusHigh}}},
	{"Chronic Kidney Disease", []Condition{{"creatinine", StatusHigh}, {"calcium", StatusLow}}},
	{"Renal Impairment", []Condition{{"creatinine", StatusHigh}}},
	{"Azotemia", []Condition{{"urea", StatusHigh}}},
	{"Hyperuricemia", []Condition{{"uric_acid", StatusHigh}}},
	{"Dehydration (Renal)", []Condition{{"urea", StatusHigh}}},
	{"Reduced Renal Clearance", []Condition{{"creatinine", StatusHigh}}},
	// The electrolyte pseudo-parameter is never extracted, so this rule
	// cannot fire; kept for catalog parity with the clinical rule set.
	{"Renal Tubular Dysfunction", []Condition{{"electrolyte", StatusAbnormal}}},

	// Diabetes
	{"Hypoglycemia", []Condition{{"fasting_glucose", StatusLow}}},
	{"Prediabetes", []Condition{{"fasting_glucose", StatusHigh}}},
	{"Diabetes Mellitus", []Condition{{"hba1c", StatusHigh}}},
	{"Poor Glycemic Control", []Condition{{"hba1c", StatusHigh}, {"urine_sugar", StatusHigh}}},
	{"Diabetic Nephropathy Risk", []Condition{{"urine_protein", StatusHigh}}},

	// Thyroid
	{"Hypothyroidism", []Condition{{"tsh", StatusHigh}}},
	{"Hyperthyroidism", []Condition{{"tsh", StatusLow}}},
	{"Subclinical Hypothyroidism", []Condition{{"tsh", StatusHigh}, {"t4", StatusNormal}}},
	{"Subclinical Hyperthyroidism", []Condition{{"tsh", StatusLow}, {"t4", StatusNormal}}},
	{"Thyroid Hormone Imbalance", []Condition{{"t3", StatusAbnormal}}},
	{"Non-specific Thyroid Dysfunction", []Condition{{"tsh", StatusAbnormal}}},

	// Lipid
	{"Dyslipidemia", []Condition{{"total_cholesterol", StatusHigh}}},
	{"Atherogenic Lipid Pattern", []Condition{{"ldl", StatusHigh}, {"hdl", StatusLow}}},
	{"Hypertriglyceridemia", []Condition{{"triglycerides", StatusHigh}}},
	{"Low HDL Risk", []Condition{{"hdl", StatusLow}}},
	{"Mixed Hyperlipidemia", []Condition{{"ldl", StatusHigh}, {"triglycerides", StatusHigh}}},
	{"Cardiovascular Lipid Risk", []Condition{{"ldl", StatusHigh}}},

	// Electrolytes
	{"Hyponatremia", []Condition{{"sodium", StatusLow}}},
	{"Hypernatremia", []Condition{{"sodium", StatusHigh}}},
	{"Hypokalemia", []Condition{{"potassium", StatusLow}}},
	{"Hyperkalemia", []Condition{{"potassium", StatusHigh}}},
	{"Hypocalcemia", []Condition{{"calcium", StatusLow}}},
	{"Hypercalcemia", []Condition{{"calcium", StatusHigh}}},
	{"Electrolyte Imbalance Syndrome", []Condition{{"sodium", StatusAbnormal}}},

	// Vitamins / iron
	{"Iron Deficiency", []Condition{{"ferritin", StatusLow}}},
	{"Iron Overload", []Condition{{"ferritin", StatusHigh}}},
	{"Vitamin B12 Deficiency", []Condition{{"vitamin_b12", StatusLow}}},
	{"Vitamin D Deficiency", []Condition{{"vitamin_d", StatusLow}}},
	{"Folate Deficiency", []Condition{{"folate", StatusLow}}},
	{"Nutritional Deficiency Pattern", []Condition{{"vitamin_d", StatusLow}, {"vitamin_b12", StatusLow}}},

	// Inflammatory
	{"Acute Inflammation", []Condition{{"crp", StatusHigh}}},
	{"Chronic Inflammation", []Condition{{"esr", StatusHigh}}},
	{"Systemic Inflammatory Response", []Condition{{"crp", StatusHigh}, {"wbc", StatusHigh}}},
	{"Possible Infection / Sepsis Risk", []Condition{{"crp", StatusHigh}, {"neutrophils", StatusHigh}}},

	// Cardiac
	{"Myocardial Injury", []Condition{{"troponin", StatusHigh}}},
	{"Cardiac Stress Pattern", []Condition{{"ck_mb", StatusHigh}}},
	{"Heart Failure Risk", []Condition{{"bnp", StatusHigh}}},

	// Coagulation / urine
	{"Bleeding Risk", []Condition{{"inr", StatusHigh}}},
	{"Proteinuria", []Condition{{"urine_protein", StatusHigh}}},
	{"Glycosuria", []Condition{{"urine_sugar", StatusHigh}}},
}
