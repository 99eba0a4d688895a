package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

type fakeVerifier struct {
	err   error
	calls int
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) error {
	f.calls++
	return f.err
}

type fakeContactStore struct {
	err     error
	created []models.Contact
}

func (f *fakeContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *contact)
	return nil
}

type fakeMailer struct {
	err   error
	calls int
}

func (f *fakeMailer) SendContactNotification(ctx context.Context, contact models.Contact) error {
	f.calls++
	return f.err
}

type fakeForwarder struct {
	err   error
	calls int
	last  ContactSubmission
}

func (f *fakeForwarder) Forward(ctx context.Context, sub ContactSubmission) error {
	f.calls++
	f.last = sub
	return f.err
}

func sampleSubmission() ContactSubmission {
	return ContactSubmission{
		Name:     "Cole",
		Email:    "cole@example.com",
		Company:  "IBE",
		Message:  "Need a quote",
		Products: "Bread Racks (x2), Dough Troughs (x1)",
	}
}

func TestSubmitWithoutVerifierConfigured(t *testing.T) {
	store := &fakeContactStore{}
	pipeline := &IntakePipeline{Store: store}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	assert.ErrorIs(t, err, ErrVerifierNotConfigured)
	assert.Empty(t, store.created)
}

func TestSubmitVerificationFailureHasNoSideEffects(t *testing.T) {
	verifier := &fakeVerifier{err: ErrVerificationFailed}
	store := &fakeContactStore{}
	mailer := &fakeMailer{}
	forwarder := &fakeForwarder{}
	notified := 0

	pipeline := &IntakePipeline{
		Verifier:  verifier,
		Store:     store,
		Mailer:    mailer,
		Forwarder: forwarder,
		Notify:    func(models.Contact) { notified++ },
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "bad-token")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Empty(t, store.created)
	assert.Zero(t, mailer.calls)
	assert.Zero(t, forwarder.calls)
	assert.Zero(t, notified)
}

func TestSubmitHappyPath(t *testing.T) {
	store := &fakeContactStore{}
	mailer := &fakeMailer{}
	forwarder := &fakeForwarder{}
	var notified []models.Contact

	pipeline := &IntakePipeline{
		Verifier:  &fakeVerifier{},
		Store:     store,
		Mailer:    mailer,
		Forwarder: forwarder,
		Notify:    func(c models.Contact) { notified = append(notified, c) },
	}

	contact, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "cole@example.com", store.created[0].Email)
	assert.Equal(t, "Bread Racks (x2), Dough Troughs (x1)", store.created[0].Products)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, 1, forwarder.calls)
	require.Len(t, notified, 1)
	assert.Equal(t, contact.ID, notified[0].ID)
}

func TestSubmitPersistFailureDoesNotAbort(t *testing.T) {
	store := &fakeContactStore{err: errors.New("db down")}
	mailer := &fakeMailer{}
	forwarder := &fakeForwarder{}
	notified := 0

	pipeline := &IntakePipeline{
		Verifier:  &fakeVerifier{},
		Store:     store,
		Mailer:    mailer,
		Forwarder: forwarder,
		Notify:    func(models.Contact) { notified++ },
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	assert.NoError(t, err, "a failed insert must not lose the lead notification")
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, 1, forwarder.calls)
	assert.Zero(t, notified, "dashboards only hear about persisted leads")
}

func TestSubmitEmailFailureStillForwards(t *testing.T) {
	store := &fakeContactStore{}
	mailer := &fakeMailer{err: errors.New("smtp exploded")}
	forwarder := &fakeForwarder{}

	pipeline := &IntakePipeline{
		Verifier:  &fakeVerifier{},
		Store:     store,
		Mailer:    mailer,
		Forwarder: forwarder,
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	assert.NoError(t, err)
	assert.Len(t, store.created, 1)
	assert.Equal(t, 1, forwarder.calls)
}

func TestSubmitForwardFailureIsReported(t *testing.T) {
	store := &fakeContactStore{}
	forwardErr := errors.New("webhook 500")

	pipeline := &IntakePipeline{
		Verifier:  &fakeVerifier{},
		Store:     store,
		Forwarder: &fakeForwarder{err: forwardErr},
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	assert.ErrorIs(t, err, forwardErr)
	assert.ErrorIs(t, err, ErrForwardFailed)
	assert.Len(t, store.created, 1, "the lead is still persisted")
}

func TestSubmitVerifierTransportFailureIsNotAForwardFailure(t *testing.T) {
	store := &fakeContactStore{}
	pipeline := &IntakePipeline{
		Verifier:  &fakeVerifier{err: errors.New("challenge endpoint unreachable")},
		Store:     store,
		Forwarder: &fakeForwarder{},
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVerificationFailed)
	assert.NotErrorIs(t, err, ErrForwardFailed)
	assert.Empty(t, store.created)
}

func TestSubmitWithoutForwarderSucceeds(t *testing.T) {
	pipeline := &IntakePipeline{
		Verifier: &fakeVerifier{},
		Store:    &fakeContactStore{},
	}

	_, err := pipeline.Submit(context.Background(), sampleSubmission(), "tok")
	assert.NoError(t, err)
}
