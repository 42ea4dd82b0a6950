// Package dummydb provides in-memory repositories for tests and local
// hacking; same contracts as the HTTP store client, no network.
package dummydb

import (
	"strconv"
	"sync"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

type (
	DB struct {
		student *studentTable
		section *sectionTable
		result  *resultTable
	}

	studentTable struct {
		sync.RWMutex
		pkCount int
		table   map[core.ID]*student.Student
	}

	sectionTable struct {
		sync.RWMutex
		pkCount int
		table   map[core.ID]*section.Section
	}

	resultTable struct {
		sync.RWMutex
		pkCount int
		table   map[core.ID]*result.Result
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[core.ID]*student.Student)},
		section: &sectionTable{table: make(map[core.ID]*section.Section)},
		result:  &resultTable{table: make(map[core.ID]*result.Result)},
	}
	return db, nil
}

func (t *studentTable) nextPK() core.ID {
	t.pkCount++
	return core.ID(strconv.Itoa(t.pkCount))
}

func (t *sectionTable) nextPK() core.ID {
	t.pkCount++
	return core.ID(strconv.Itoa(t.pkCount))
}

func (t *resultTable) nextPK() core.ID {
	t.pkCount++
	return core.ID(strconv.Itoa(t.pkCount))
}
