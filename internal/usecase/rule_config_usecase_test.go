package usecase

import (
	"context"
	"errors"
	"testing"

	"servicescale/internal/domain/entities"
	mock_interfaces "servicescale/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRuleConfigStore_Get(t *testing.T) {
	t.Run("in memory defaults", func(t *testing.T) {
		s := NewRuleConfigStore(nil, nil)
		if got := s.Get(context.Background()); got != entities.DefaultRuleConfig() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})

	t.Run("load failure serves defaults and retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleConfigRepository(ctrl)
		s := NewRuleConfigStore(repo, nil)

		persisted := entities.DefaultRuleConfig()
		persisted.MaxZones = 6

		gomock.InOrder(
			repo.EXPECT().Load(gomock.Any()).Return(entities.RuleConfig{}, false, errors.New("connection refused")),
			repo.EXPECT().Load(gomock.Any()).Return(persisted, true, nil),
		)

		if got := s.Get(context.Background()); got != entities.DefaultRuleConfig() {
			t.Fatalf("expected defaults, got %+v", got)
		}
		if got := s.Get(context.Background()); got.MaxZones != 6 {
			t.Fatalf("expected persisted rules, got %+v", got)
		}
		// loaded once; no further Load calls expected
		if got := s.Get(context.Background()); got.MaxZones != 6 {
			t.Fatalf("expected cached rules, got %+v", got)
		}
	})

	t.Run("nothing persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleConfigRepository(ctrl)
		s := NewRuleConfigStore(repo, nil)

		repo.EXPECT().Load(gomock.Any()).Return(entities.RuleConfig{}, false, nil).Times(1)

		s.Get(context.Background())
		if got := s.Get(context.Background()); got != entities.DefaultRuleConfig() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})
}

func TestRuleConfigStore_Update(t *testing.T) {
	t.Run("merges and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleConfigRepository(ctrl)
		s := NewRuleConfigStore(repo, nil)

		want := entities.DefaultRuleConfig()
		want.SizeThresholds.Medium = 2000
		want.BaseZones = 2

		repo.EXPECT().Load(gomock.Any()).Return(entities.RuleConfig{}, false, nil)
		repo.EXPECT().Save(gomock.Any(), want).Return(nil)

		medium, base := 2000.0, 2
		got, err := s.Update(context.Background(), entities.RuleConfigPatch{MediumThreshold: &medium, BaseZones: &base})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want || s.Get(context.Background()) != want {
			t.Fatalf("unexpected rules %+v", got)
		}
	})

	t.Run("save failure keeps previous rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleConfigRepository(ctrl)
		s := NewRuleConfigStore(repo, nil)

		repo.EXPECT().Load(gomock.Any()).Return(entities.RuleConfig{}, false, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("READONLY"))

		maxZones := 9
		_, err := s.Update(context.Background(), entities.RuleConfigPatch{MaxZones: &maxZones})
		if !IsRemote(err) {
			t.Fatalf("expected remote error, got %v", err)
		}
		if got := s.Get(context.Background()); got != entities.DefaultRuleConfig() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})
}
