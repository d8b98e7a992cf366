package entity

// DeveloperYearPositive is one positively-reviewed title for a developer
// in a year. Used purely for counting.
type DeveloperYearPositive struct {
	Year      int    `db:"year"`
	Developer string `db:"developer"`
}
