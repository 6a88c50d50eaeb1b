package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/infras/otel/mocks"
	"venue/shared/constant"
	"venue/shared/dto"
	"venue/shared/model"
)

type thing struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}

func newThingRepository() Repository[thing] {
	return NewRepository[thing]("thing", "things", "id", nil, mocks.NewOtel())
}

func TestRepository_OrderClause(t *testing.T) {
	repo := newThingRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name:   "known column",
			params: dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			want:   "ORDER BY name ASC",
		},
		{
			name:   "metadata column",
			params: dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc},
			want:   "ORDER BY created_at DESC",
		},
		{
			name:   "unknown column falls back to the default",
			params: dto.QueryParams{SortBy: "nonexistent", SortDir: dto.SortDirAsc},
			want:   "ORDER BY " + constant.DefaultValueSortBy + " ASC",
		},
		{
			name:   "sql in the sort column never reaches the clause",
			params: dto.QueryParams{SortBy: "(SELECT pg_sleep(10)), name", SortDir: dto.SortDirAsc},
			want:   "ORDER BY " + constant.DefaultValueSortBy + " ASC",
		},
		{
			name:   "invalid direction falls back to the default",
			params: dto.QueryParams{SortBy: "name", SortDir: "SIDEWAYS; DROP TABLE things"},
			want:   "ORDER BY name " + constant.DefaultValueSortDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderClause(tt.params))
		})
	}
}
