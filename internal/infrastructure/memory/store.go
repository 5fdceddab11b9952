package memory

import (
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

// Store groups one collection per entity kind. Each instance is independent;
// tests build their own.
type Store struct {
	Users    *Collection[entity.User]
	Talents  *Collection[entity.Talent]
	Works    *Collection[entity.Work]
	Projects *Collection[entity.Project]
}

func NewStore() *Store {
	return &Store{
		Users:    NewCollection[entity.User](),
		Talents:  NewCollection[entity.Talent](),
		Works:    NewCollection[entity.Work](),
		Projects: NewCollection[entity.Project](),
	}
}

func (s *Store) Stores() repository.Stores {
	return repository.Stores{Users: s.Users, Talents: s.Talents, Works: s.Works, Projects: s.Projects}
}
