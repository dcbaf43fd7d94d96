package controllers

import (
	"context"
	"sync"

	"dojoroll/models"
	"dojoroll/store"
)

// fakeStore is an in-memory store.Store used to exercise the controllers
// without a live Firestore project.
type fakeStore struct {
	mu sync.Mutex

	// date -> className -> uid -> record
	signins map[string]map[string]map[string]models.SignInRecord
	users   map[string]*models.UserProfile
	// userOrder fixes enumeration order for deterministic assertions.
	userOrder []string

	recordErr  error
	classesErr error
	listErr    error
	usersErr   error
	ackErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		signins: map[string]map[string]map[string]models.SignInRecord{},
		users:   map[string]*models.UserProfile{},
	}
}

func (f *fakeStore) addUser(u models.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := u
	f.users[u.UID] = &copied
	f.userOrder = append(f.userOrder, u.UID)
}

func (f *fakeStore) user(uid string) models.UserProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[uid]; ok {
		return *u
	}
	return models.UserProfile{UID: uid}
}

func (f *fakeStore) RecordSignIn(_ context.Context, date, className, uid string, rec models.SignInRecord, counter store.Counter) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	day, ok := f.signins[date]
	if !ok {
		day = map[string]map[string]models.SignInRecord{}
		f.signins[date] = day
	}
	class, ok := day[className]
	if !ok {
		class = map[string]models.SignInRecord{}
		day[className] = class
	}
	class[uid] = rec

	if counter == store.CounterNone {
		return nil
	}
	u, ok := f.users[uid]
	if !ok {
		u = &models.UserProfile{UID: uid}
		f.users[uid] = u
		f.userOrder = append(f.userOrder, uid)
	}
	switch counter {
	case store.CounterGi:
		u.GiCount++
	case store.CounterNogi:
		u.NogiCount++
	}
	return nil
}

func (f *fakeStore) ClassesOn(_ context.Context, date string) ([]string, error) {
	if f.classesErr != nil {
		return nil, f.classesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	classes := []string{}
	for className := range f.signins[date] {
		classes = append(classes, className)
	}
	return classes, nil
}

func (f *fakeStore) SignInsFor(_ context.Context, date, className string) ([]models.SignInRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	records := []models.SignInRecord{}
	for _, rec := range f.signins[date][className] {
		records = append(records, rec)
	}
	return records, nil
}

func (f *fakeStore) Users(_ context.Context) ([]models.UserProfile, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.UserProfile, 0, len(f.userOrder))
	for _, uid := range f.userOrder {
		users = append(users, *f.users[uid])
	}
	return users, nil
}

func (f *fakeStore) AcknowledgeMilestone(_ context.Context, uid string, total int) error {
	if f.ackErr != nil {
		return f.ackErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		u = &models.UserProfile{UID: uid}
		f.users[uid] = u
		f.userOrder = append(f.userOrder, uid)
	}
	u.TotalMilestone = total
	return nil
}
