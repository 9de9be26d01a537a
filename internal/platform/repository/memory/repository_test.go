package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TestEntity struct {
	ID   string
	Name string
}

func (e *TestEntity) GetID() string {
	return e.ID
}

type RepositoryTestSuite struct {
	suite.Suite
	repo *Repository[*TestEntity]
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = New[*TestEntity]()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) SetupSubTest() {
	s.repo = New[*TestEntity]()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) createTestEntity(id, name string) *TestEntity {
	return &TestEntity{ID: id, Name: name}
}

func (s *RepositoryTestSuite) saveTestEntity(entity *TestEntity) {
	err := s.repo.Save(s.ctx, entity)
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) ids() []string {
	entities, err := s.repo.List(s.ctx)
	s.Require().NoError(err)

	ids := make([]string, len(entities))
	for i, entity := range entities {
		ids[i] = entity.ID
	}
	return ids
}

func (s *RepositoryTestSuite) TestNew() {
	repo := New[*TestEntity]()

	s.Require().NotNil(repo, "New() should not return nil")
	s.Require().NotNil(repo.data, "Repository data should be initialized")
	s.Assert().Empty(repo.data, "Repository data should be empty initially")
}

func (s *RepositoryTestSuite) TestSave() {
	tests := []struct {
		name          string
		entity        *TestEntity
		setupRepo     func()
		expectedError error
		expectedIDs   []string
	}{
		{
			name:        "successful_save",
			entity:      s.createTestEntity("test-id", "Test Entity"),
			setupRepo:   func() {},
			expectedIDs: []string{"test-id"},
		},
		{
			name:   "appends_in_insertion_order",
			entity: s.createTestEntity("c", "C"),
			setupRepo: func() {
				s.saveTestEntity(s.createTestEntity("b", "B"))
				s.saveTestEntity(s.createTestEntity("a", "A"))
			},
			expectedIDs: []string{"b", "a", "c"},
		},
		{
			name:   "entity_already_exists",
			entity: s.createTestEntity("existing-id", "New Entity"),
			setupRepo: func() {
				s.saveTestEntity(s.createTestEntity("existing-id", "Existing Entity"))
			},
			expectedError: ErrAlreadyExists,
			expectedIDs:   []string{"existing-id"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupRepo()
			err := s.repo.Save(s.ctx, tt.entity)

			if tt.expectedError != nil {
				s.Require().Error(err)
				s.Assert().ErrorIs(err, tt.expectedError)
			} else {
				s.Require().NoError(err)
			}

			s.Assert().Equal(tt.expectedIDs, s.ids())
		})
	}
}

func (s *RepositoryTestSuite) TestSave_DuplicateKeepsOriginal() {
	s.saveTestEntity(s.createTestEntity("id", "Original"))

	err := s.repo.Save(s.ctx, s.createTestEntity("id", "Other"))
	s.Require().ErrorIs(err, ErrAlreadyExists)

	entity, err := s.repo.GetByID(s.ctx, "id")
	s.Require().NoError(err)
	s.Assert().Equal("Original", entity.Name)
}

func (s *RepositoryTestSuite) TestGetByID() {
	s.Run("successful_get", func() {
		s.saveTestEntity(s.createTestEntity("test-id", "Test Entity"))

		entity, err := s.repo.GetByID(s.ctx, "test-id")

		s.Require().NoError(err)
		s.Assert().Equal("Test Entity", entity.Name)
	})

	s.Run("entity_not_found", func() {
		entity, err := s.repo.GetByID(s.ctx, "nonexistent-id")

		s.Require().ErrorIs(err, ErrNotFound)
		s.Assert().Nil(entity)
	})
}

func (s *RepositoryTestSuite) TestReplace() {
	tests := []struct {
		name          string
		id            string
		entity        *TestEntity
		expectedError error
		expectedIDs   []string
		expectedName  string
	}{
		{
			name:         "replace_in_place",
			id:           "b",
			entity:       s.createTestEntity("b", "Updated"),
			expectedIDs:  []string{"a", "b", "c"},
			expectedName: "Updated",
		},
		{
			name:         "replace_with_new_id",
			id:           "b",
			entity:       s.createTestEntity("z", "Renamed"),
			expectedIDs:  []string{"a", "z", "c"},
			expectedName: "Renamed",
		},
		{
			name:          "entity_not_found",
			id:            "missing",
			entity:        s.createTestEntity("missing", "Missing"),
			expectedError: ErrNotFound,
			expectedIDs:   []string{"a", "b", "c"},
		},
		{
			name:          "new_id_taken_by_other_entity",
			id:            "b",
			entity:        s.createTestEntity("c", "Clash"),
			expectedError: ErrAlreadyExists,
			expectedIDs:   []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.saveTestEntity(s.createTestEntity("a", "A"))
			s.saveTestEntity(s.createTestEntity("b", "B"))
			s.saveTestEntity(s.createTestEntity("c", "C"))

			err := s.repo.Replace(s.ctx, tt.id, tt.entity)

			if tt.expectedError != nil {
				s.Require().ErrorIs(err, tt.expectedError)
			} else {
				s.Require().NoError(err)
				replaced, getErr := s.repo.GetByID(s.ctx, tt.entity.ID)
				s.Require().NoError(getErr)
				s.Assert().Equal(tt.expectedName, replaced.Name)
			}

			s.Assert().Equal(tt.expectedIDs, s.ids())
		})
	}
}

func (s *RepositoryTestSuite) TestDelete() {
	s.Run("successful_delete_preserves_order", func() {
		s.saveTestEntity(s.createTestEntity("a", "A"))
		s.saveTestEntity(s.createTestEntity("b", "B"))
		s.saveTestEntity(s.createTestEntity("c", "C"))

		err := s.repo.Delete(s.ctx, "b")

		s.Require().NoError(err)
		s.Assert().Equal([]string{"a", "c"}, s.ids())
	})

	s.Run("entity_not_found", func() {
		s.saveTestEntity(s.createTestEntity("a", "A"))

		err := s.repo.Delete(s.ctx, "missing")

		s.Require().ErrorIs(err, ErrNotFound)
		count, countErr := s.repo.Count(s.ctx)
		s.Require().NoError(countErr)
		s.Assert().Equal(1, count)
	})
}

func (s *RepositoryTestSuite) TestList_ReturnsCopy() {
	s.saveTestEntity(s.createTestEntity("a", "A"))

	entities, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	entities[0] = s.createTestEntity("x", "X")

	s.Assert().Equal([]string{"a"}, s.ids())
}

func (s *RepositoryTestSuite) TestFilter() {
	s.saveTestEntity(s.createTestEntity("a1", "keep"))
	s.saveTestEntity(s.createTestEntity("b1", "drop"))
	s.saveTestEntity(s.createTestEntity("a2", "keep"))

	entities, err := s.repo.Filter(s.ctx, func(e *TestEntity) bool { return e.Name == "keep" })
	s.Require().NoError(err)
	s.Require().Len(entities, 2)
	s.Assert().Equal("a1", entities[0].ID)
	s.Assert().Equal("a2", entities[1].ID)

	none, err := s.repo.Filter(s.ctx, func(*TestEntity) bool { return false })
	s.Require().NoError(err)
	s.Assert().NotNil(none)
	s.Assert().Empty(none)
}

func (s *RepositoryTestSuite) TestSort() {
	s.saveTestEntity(s.createTestEntity("3", "same"))
	s.saveTestEntity(s.createTestEntity("1", "b"))
	s.saveTestEntity(s.createTestEntity("2", "same"))
	s.saveTestEntity(s.createTestEntity("0", "a"))

	sorted, err := s.repo.Sort(s.ctx, func(a, b *TestEntity) int { return strings.Compare(a.Name, b.Name) })
	s.Require().NoError(err)

	sortedIDs := make([]string, len(sorted))
	for i, entity := range sorted {
		sortedIDs[i] = entity.ID
	}

	// stable: "3" stays ahead of "2"
	s.Assert().Equal([]string{"0", "1", "3", "2"}, sortedIDs)
	s.Assert().Equal(sortedIDs, s.ids(), "sort should reorder the stored sequence")
}

func (s *RepositoryTestSuite) TestConcurrentAccess() {
	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.repo.Save(s.ctx, s.createTestEntity(fmt.Sprintf("id-%d", i), "Entity"))
			_, _ = s.repo.List(s.ctx)
			_, _ = s.repo.Count(s.ctx)
		}(i)
	}
	wg.Wait()

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(workers, count)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
