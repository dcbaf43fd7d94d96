package models

// UserProfile is one document per participant under users/{uid}.
// TotalMilestone is the highest total class count already acknowledged by a
// milestone scan; it only ever grows.
type UserProfile struct {
	UID            string `firestore:"-" json:"uid"`
	DisplayName    string `firestore:"displayName" json:"displayName"`
	Email          string `firestore:"email" json:"email"`
	GiCount        int    `firestore:"giCount" json:"giCount"`
	NogiCount      int    `firestore:"nogiCount" json:"nogiCount"`
	TotalMilestone int    `firestore:"totalMilestone" json:"totalMilestone"`
}

// Total is the user's combined class count across disciplines.
func (u UserProfile) Total() int {
	return u.GiCount + u.NogiCount
}

// MilestoneEvent describes a user whose total class count crossed a new
// threshold. It is returned to callers but never persisted.
type MilestoneEvent struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}
