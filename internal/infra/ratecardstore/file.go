package ratecardstore

import (
	"context"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/errs"

	"github.com/spf13/viper"
)

// FileStore serves a rate card catalogue loaded once from a YAML, JSON or TOML file.
type FileStore struct {
	cards map[ratecard.SpaceType]*ratecard.RateCard
}

type catalogue struct {
	RateCards []converter.RateCardDocument `mapstructure:"rate_cards"`
}

func NewFileStore(path string) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errs.Wrapf(err, "read rate card file %s", path)
	}

	var c catalogue
	if err := v.Unmarshal(&c); err != nil {
		return nil, errs.Wrapf(err, "decode rate card file %s", path)
	}
	return newFileStore(c.RateCards)
}

func newFileStore(docs []converter.RateCardDocument) (*FileStore, error) {
	cards := make(map[ratecard.SpaceType]*ratecard.RateCard, len(docs))
	for _, doc := range docs {
		card, err := converter.RateCardToDomain(doc)
		if err != nil {
			return nil, err
		}
		if _, dup := cards[card.SpaceType()]; dup {
			return nil, errs.Reasonf(errs.ErrInvalidRateCard, "rate card %s is defined twice", card.SpaceType())
		}
		cards[card.SpaceType()] = card
	}
	return &FileStore{cards: cards}, nil
}

func (s *FileStore) FindBySpaceType(_ context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	card, ok := s.cards[spaceType]
	if !ok {
		return nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card for space type %q", spaceType)
	}
	return card, nil
}
