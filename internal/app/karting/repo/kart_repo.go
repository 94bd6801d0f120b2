package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_kart"
	"github.com/light-bringer/karting-service/internal/pkg/query"
)

// KartRepo implements KartRepository for Spanner.
type KartRepo struct {
	client *spanner.Client
	model  *m_kart.Model
}

// NewKartRepo creates a new KartRepo.
func NewKartRepo(client *spanner.Client) contracts.KartRepository {
	return &KartRepo{
		client: client,
		model:  m_kart.NewModel(),
	}
}

func (r *KartRepo) InsertMut(k *domain.Kart) *spanner.Mutation {
	return r.model.InsertMut(&m_kart.Data{
		KartID:    k.ID(),
		Code:      k.Code(),
		Available: k.Available(),
	})
}

func (r *KartRepo) UpdateMut(k *domain.Kart) *spanner.Mutation {
	if !k.Changes().Dirty(domain.FieldAvailable) {
		return nil
	}
	return r.model.UpdateAvailabilityMut(k.ID(), k.Available())
}

func (r *KartRepo) GetByID(ctx context.Context, kartID string) (*domain.Kart, error) {
	row, err := r.client.Single().ReadRow(ctx, m_kart.TableName, spanner.Key{kartID}, m_kart.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrKartNotFound
		}
		return nil, domain.NewStoreError(err)
	}
	return rowToKart(row)
}

func (r *KartRepo) List(ctx context.Context) ([]*domain.Kart, error) {
	stmt := query.From(m_kart.TableName).
		Select(m_kart.Columns...).
		OrderBy(m_kart.Code, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	karts := make([]*domain.Kart, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domain.NewStoreError(err)
		}
		k, err := rowToKart(row)
		if err != nil {
			return nil, err
		}
		karts = append(karts, k)
	}
	return karts, nil
}

func rowToKart(row *spanner.Row) (*domain.Kart, error) {
	var data m_kart.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, domain.NewStoreError(err)
	}
	return domain.ReconstructKart(data.KartID, data.Code, data.Available, data.CreatedAt, data.UpdatedAt), nil
}
