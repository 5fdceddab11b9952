package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

// Store bundles the four document collections sharing one pool.
type Store struct {
	Users    *DocumentStore[entity.User]
	Talents  *DocumentStore[entity.Talent]
	Works    *DocumentStore[entity.Work]
	Projects *DocumentStore[entity.Project]
}

func NewStore(pool *pgxpool.Pool) *Store {
	// Table names are constants from knownTables, construction cannot fail.
	users, _ := NewDocumentStore[entity.User](pool, UsersTable)
	talents, _ := NewDocumentStore[entity.Talent](pool, TalentsTable)
	works, _ := NewDocumentStore[entity.Work](pool, WorksTable)
	projects, _ := NewDocumentStore[entity.Project](pool, ProjectsTable)
	return &Store{Users: users, Talents: talents, Works: works, Projects: projects}
}

func (s *Store) Stores() repository.Stores {
	return repository.Stores{Users: s.Users, Talents: s.Talents, Works: s.Works, Projects: s.Projects}
}
