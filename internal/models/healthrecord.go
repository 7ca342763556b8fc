package models

import "time"

const HealthRecordCollection = "healthrecord"

// HealthRecord stores one visit's findings. The privacy_level is persisted
// verbatim; reads do not filter by it.
type HealthRecord struct {
	PatientID    string                   `json:"patient_id" bson:"patient_id" binding:"required"`
	DoctorID     string                   `json:"doctor_id,omitempty" bson:"doctor_id,omitempty"`
	VisitDate    time.Time                `json:"visit_date" bson:"visit_date" binding:"required"`
	Vitals       map[string]interface{}   `json:"vitals,omitempty" bson:"vitals,omitempty"`
	Diagnosis    string                   `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Prescription []map[string]interface{} `json:"prescription,omitempty" bson:"prescription,omitempty"`
	Attachments  []string                 `json:"attachments,omitempty" bson:"attachments,omitempty"`
	PrivacyLevel string                   `json:"privacy_level" bson:"privacy_level" binding:"omitempty,oneof=patient doctor facility government"`
}

func (r *HealthRecord) ApplyDefaults() {
	if r.PrivacyLevel == "" {
		r.PrivacyLevel = "patient"
	}
}
