package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores a []string column as JSON text.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for StringList")
}

// CareerPath is one row of the career catalog.
type CareerPath struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	AvgSalary        string     `json:"avg_salary"`
	Competition      string     `json:"competition"`
	CompetitionScore int        `json:"competition_score"`
	Growth           string     `json:"growth"`
	Skills           StringList `gorm:"type:text" json:"skills"`
	Duration         string     `json:"duration"`
	ROI              int        `json:"roi"`
	DemandTrend      string     `json:"demand_trend"`
	JobOpenings      string     `json:"job_openings"`
	Description      string     `json:"description"`
	TopRoles         StringList `gorm:"type:text" json:"top_roles"`
	Certifications   StringList `gorm:"type:text" json:"certifications"`
}
