package rag

import "strings"

// contentTopic files one prewritten guidance block under a topic key. Table
// order is match priority: the first matching topic wins and exactly one
// block is ever returned.
type contentTopic struct {
	key   string
	block string
}

var contentTable = []contentTopic{
	{"chest_pain", `**Clinical Assessment for Chest Pain:**

**Risk Stratification:**
• HEART Score for acute chest pain risk assessment (0-3: low risk, 4-6: moderate, 7-10: high risk)
• High-sensitivity troponin at 0 and 3 hours for rule-out protocols
• ECG within 10 minutes of presentation for all patients

**Diagnostic Strategy:**
• Low risk (HEART 0-3): Discharge with outpatient follow-up, consider stress testing
• Moderate risk (HEART 4-6): Serial troponins, observation, stress testing
• High risk (HEART 7-10): Cardiology consultation, consider early invasive strategy

**Immediate Management:**
• Aspirin 325mg (unless contraindicated)
• Dual antiplatelet therapy for ACS
• Beta-blocker if no contraindications
• High-intensity statin therapy for confirmed ACS`},

	{"pharyngitis", `**Evidence-Based Management of Acute Pharyngitis:**

**Diagnostic Approach:**
• Centor criteria for bacterial pharyngitis risk stratification
• Rapid antigen detection test (RADT) if Centor score ≥3
• Throat culture if RADT negative in high-risk patients

**Treatment Recommendations:**
• **First-line (Group A Strep confirmed):**
  - Amoxicillin 500mg BID × 10 days (adults)
  - Amoxicillin 50mg/kg/day divided BID × 10 days (pediatric, max 1g/day)

• **Penicillin allergic patients:**
  - Azithromycin 500mg day 1, then 250mg daily × 4 days
  - Clarithromycin 250mg BID × 10 days
  - Clindamycin 300mg TID × 10 days

**Key Clinical Points:**
• Complete 10-day course essential to prevent rheumatic fever
• Return to work/school 24 hours after antibiotic initiation
• Symptomatic treatment only for viral pharyngitis`},

	{"headache", `**Evidence-Based Headache Management:**

**Red Flags (Immediate Workup Required):**
• Sudden onset "thunderclap" headache
• Headache with fever, neck stiffness, altered mental status
• New headache in patient >50 years
• Progressive headache with neurological deficits

**Migraine Management:**
• **Acute Treatment:**
  - Mild-moderate: NSAIDs (ibuprofen 400-800mg, naproxen 500-1000mg)
  - Moderate-severe: Triptans (sumatriptan 50-100mg, rizatriptan 10mg)
  - Severe/refractory: DHE, antiemetics, consider IV therapy

• **Preventive Therapy (≥4 headache days/month):**
  - First-line: Topiramate 25-100mg BID, propranolol 80-240mg daily
  - Second-line: Amitriptyline 25-150mg daily
  - CGRP inhibitors for refractory cases`},

	{"pediatric_fever", `**Evidence-Based Pediatric Fever Management:**

**Age-Specific Approach:**
• **Infants 0-28 days:** Any fever requires immediate evaluation and hospitalization
  - Full sepsis workup: CBC, blood culture, urine culture, lumbar puncture
  - Empiric antibiotics pending culture results

• **Infants 29-90 days:** Risk stratification using validated criteria
  - Well-appearing with low-risk criteria: Outpatient management possible
  - Ill-appearing or high-risk: Full sepsis workup and hospitalization

• **Children >90 days:** Focus on clinical appearance over temperature
  - Fever without source: Observation if well-appearing
  - Antipyretic therapy for comfort, not fever reduction per se

**Antipyretic Dosing:**
• Acetaminophen: 10-15mg/kg q4-6h (max 75mg/kg/day)
• Ibuprofen: 5-10mg/kg q6-8h (>6 months old, max 40mg/kg/day)`},
}

// genericContent is returned when no topic matches.
const genericContent = `**General Clinical Approach:**
• Comprehensive history and physical examination
• Risk stratification using validated clinical tools
• Evidence-based diagnostic workup as indicated
• Treatment according to current clinical guidelines
• Appropriate follow-up and monitoring
• Patient safety and quality indicators
• Documentation for clinical and medicolegal purposes`

// ContentIndex answers clinical guidance lookups over the static content table.
type ContentIndex struct{}

func NewContentIndex() *ContentIndex { return &ContentIndex{} }

// Content returns the first topic block whose key words appear in the query,
// or the generic fallback block when none match.
func (idx *ContentIndex) Content(query string) string {
	lower := strings.ToLower(query)
	for _, topic := range contentTable {
		for _, word := range strings.Split(topic.key, "_") {
			if strings.Contains(lower, word) {
				return topic.block
			}
		}
	}
	return genericContent
}
