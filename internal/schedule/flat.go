package schedule

import "golang.org/x/exp/constraints"

/*
Insert places step into table at the first free position of the progression m, m+step, m+2*step, ...

The table is the only state touched. An occupied position is never overwritten.

Type parameters:
  - N - unsigned integer type of positions and steps.

Parameters:
  - table - position to step map being filled.
  - m - first position tried.
  - step - stride of the forward search and value stored.

Returns:
  - the position the entry landed on.
*/
func Insert[N constraints.Unsigned](table map[N]N, m, step N) N {
	for {
		if _, taken := table[m]; !taken {
			break
		}
		m += step
	}
	table[m] = step
	return m
}

/*
Table holds at most one step per position, resolving collisions by probing forward along the entry's own progression.

Implements:
  - Schedule
*/
type Table[N constraints.Unsigned] struct {
	table map[N]N
}

/*
NewTable is a constructor of an empty flat schedule.

Type parameters:
  - N - unsigned integer type of positions and steps.

Returns:
  - pointer to the new table.
*/
func NewTable[N constraints.Unsigned]() *Table[N] {
	return &Table[N]{table: make(map[N]N)}
}

func (ego *Table[N]) Insert(position, step N) {
	Insert(ego.table, position, step)
}

func (ego *Table[N]) Advance(position N) bool {
	step, ok := ego.Pop(position)
	if ok {
		Insert(ego.table, position+step, step)
	}
	return ok
}

// Pop removes the entry at position and returns its step.
func (ego *Table[N]) Pop(position N) (step N, ok bool) {
	step, ok = ego.table[position]
	if ok {
		delete(ego.table, position)
	}
	return
}

func (ego *Table[N]) Len() int {
	return len(ego.table)
}
