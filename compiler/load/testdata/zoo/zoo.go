package zoo

import (
	"time"

	"github.com/google/uuid"
)

//sqlbinder:generate
type Dog struct {
	ID        int64  `sqlbinder:"rename=id"`
	Name      string `json:"name"`
	Age       uint32 `sqlbinder:"rename=age"`
	Owner     uuid.UUID
	CreatedAt *time.Time `sqlbinder:"skip"`
}

// Cat is not selected.
type Cat struct {
	Name string
}

type (
	//sqlbinder:generate
	Keeper struct {
		Name  string
		Zones []string
	}

	Zone struct {
		Name string
	}
)
