package ratecardstore

import (
	"context"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/errs"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore reads rate cards from a collection keyed by space type.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "initialize firebase app")
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "create firestore client")
	}
	return client, nil
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	return &FirestoreStore{client: client, collection: collection}
}

func (s *FirestoreStore) FindBySpaceType(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	snap, err := s.client.Collection(s.collection).Doc(spaceType.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card for space type %q", spaceType)
		}
		return nil, infra.WrapRepoErr("failed to read rate card document", err)
	}

	var doc converter.RateCardDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "decode rate card document %s", snap.Ref.ID), errs.ErrInvalidRateCard)
	}
	if doc.SpaceType == "" {
		doc.SpaceType = snap.Ref.ID
	}
	return converter.RateCardToDomain(doc)
}

// Put writes card as a document. Used by seeding tools and tests.
func (s *FirestoreStore) Put(ctx context.Context, card *ratecard.RateCard) error {
	_, err := s.client.Collection(s.collection).Doc(card.SpaceType().String()).Set(ctx, converter.RateCardToDocument(card))
	if err != nil {
		return infra.WrapRepoErr("failed to write rate card document", err)
	}
	return nil
}
