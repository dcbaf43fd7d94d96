package models

import "time"

// SignInRecord stores one participant's attendance at one class session.
// Records live at class_signins/{date}/{className}/{uid}; a same-day
// re-sign-in for the same class overwrites the prior record.
type SignInRecord struct {
	Name      string    `firestore:"name" json:"name"`
	Time      string    `firestore:"time" json:"time"`
	Type      string    `firestore:"type" json:"type"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}

// SignInRequest is the POST /signins payload. Type is persisted as-is and
// never interpreted; Timestamp must be RFC3339.
type SignInRequest struct {
	Name      string `json:"name"`
	UID       string `json:"uid"`
	ClassName string `json:"className"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}
