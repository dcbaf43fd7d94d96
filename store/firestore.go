package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"dojoroll/models"
)

const (
	signInsCollection = "class_signins"
	usersCollection   = "users"
)

// FirestoreStore implements Store against Cloud Firestore. Sign-ins live at
// class_signins/{date}/{className}/{uid}, profiles at users/{uid}.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) dayDoc(date string) *firestore.DocumentRef {
	return s.client.Collection(signInsCollection).Doc(date)
}

func (s *FirestoreStore) userDoc(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

// RecordSignIn writes the record and bumps the counter in one transaction so
// a failure leaves neither document half-written, and concurrent sign-ins for
// the same user cannot lose an increment.
func (s *FirestoreStore) RecordSignIn(ctx context.Context, date, className, uid string, rec models.SignInRecord, counter Counter) error {
	signInRef := s.dayDoc(date).Collection(className).Doc(uid)
	userRef := s.userDoc(uid)

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(signInRef, rec); err != nil {
			return err
		}
		if counter == CounterNone {
			return nil
		}
		return tx.Set(userRef, map[string]interface{}{
			string(counter): firestore.Increment(1),
		}, firestore.MergeAll)
	})
}

func (s *FirestoreStore) ClassesOn(ctx context.Context, date string) ([]string, error) {
	cols, err := s.dayDoc(date).Collections(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	classes := make([]string, 0, len(cols))
	for _, col := range cols {
		classes = append(classes, col.ID)
	}
	return classes, nil
}

func (s *FirestoreStore) SignInsFor(ctx context.Context, date, className string) ([]models.SignInRecord, error) {
	docs, err := s.dayDoc(date).Collection(className).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	records := make([]models.SignInRecord, 0, len(docs))
	for _, doc := range docs {
		var rec models.SignInRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *FirestoreStore) Users(ctx context.Context) ([]models.UserProfile, error) {
	docs, err := s.client.Collection(usersCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	users := make([]models.UserProfile, 0, len(docs))
	for _, doc := range docs {
		var u models.UserProfile
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		u.UID = doc.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

func (s *FirestoreStore) AcknowledgeMilestone(ctx context.Context, uid string, total int) error {
	_, err := s.userDoc(uid).Set(ctx, map[string]interface{}{
		"totalMilestone": total,
	}, firestore.MergeAll)
	return err
}
