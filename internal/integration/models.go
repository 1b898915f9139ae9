// Package integration holds record types with checked-in binder files. The
// tests run the generated code against sqlmock and an in-memory SQLite
// database, and check that the files match what the generator produces.
package integration

import (
	"time"

	"github.com/google/uuid"
)

//go:generate go run github.com/syssam/sqlbinder/cmd/sqlbinder

//sqlbinder:generate
type Dog struct {
	ID             int64  `sqlbinder:"rename=id"`
	Name           string `sqlbinder:"rename=name"`
	Age            uint32 `sqlbinder:"rename=age"`
	LifeExpectancy uint32 `sqlbinder:"rename=life_expectancy"`
}

//sqlbinder:generate
type Skipper struct {
	Name           string `sqlbinder:"rename=name"`
	Age            uint32 `sqlbinder:"skip"`
	Sex            string `json:"sex" sqlbinder:"skip"`
	LifeExpectancy uint32 `sqlbinder:"rename=life_expectancy"`
}

//sqlbinder:generate
type ThisIsStructName struct {
	Value string
}

//sqlbinder:generate
type Test1 struct {
	Name string `sqlbinder:"rename=name"`
}

//sqlbinder:generate
type Test2 struct {
	Name  string `sqlbinder:"rename=title"`
	Count int    `sqlbinder:"rename=count"`
}

// Keeper mixes imported, pointer and skipped field types.
//
//sqlbinder:generate
type Keeper struct {
	ID      uuid.UUID      `sqlbinder:"rename=id"`
	Name    string         `json:"name" sqlbinder:"rename='name'"`
	HiredAt time.Time      `sqlbinder:"rename=hired_at"`
	Zone    *string        `sqlbinder:"rename=zone"`
	Cache   map[string]any `sqlbinder:"skip"`
}

// Pen has slice and map fields, which carriers clone.
//
//sqlbinder:generate
type Pen struct {
	ID      int64          `sqlbinder:"rename=id"`
	Badge   []byte         `sqlbinder:"rename=badge"`
	Feeding map[string]int `sqlbinder:"rename=feeding"`
}
