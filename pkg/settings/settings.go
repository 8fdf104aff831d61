package settings

// Settings is the singleton configuration record. A missing record reads as
// the zero value (salary 0), never as an error.
type Settings struct {
	Salary float64
}
