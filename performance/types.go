package performance

import (
	"encoding/json"

	"perfclient/transport"
)

// Goals, milestones, KPIs and categories are mostly opaque to the
// client: created, patched and deleted by id. The typed fields below
// cover what the UI renders; everything else lands in Extra.

type Goal struct {
	ID          int64   `json:"id"`
	Employee    int64   `json:"employee"`
	Category    int64   `json:"category,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date,omitempty"`
	TargetDate  string  `json:"target_date,omitempty"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	type alias Goal
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*g = Goal(out)
	return nil
}

type Milestone struct {
	ID        int64  `json:"id"`
	Goal      int64  `json:"goal"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date,omitempty"`
	Completed bool   `json:"completed"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (m *Milestone) UnmarshalJSON(data []byte) error {
	type alias Milestone
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*m = Milestone(out)
	return nil
}

type KPI struct {
	ID           int64   `json:"id"`
	Employee     int64   `json:"employee,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit,omitempty"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (k *KPI) UnmarshalJSON(data []byte) error {
	type alias KPI
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*k = KPI(out)
	return nil
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*c = Category(out)
	return nil
}

type ProgressUpdate struct {
	ID        int64   `json:"id"`
	Goal      int64   `json:"goal"`
	Note      string  `json:"note"`
	Progress  float64 `json:"progress"`
	CreatedAt string  `json:"created_at,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (p *ProgressUpdate) UnmarshalJSON(data []byte) error {
	type alias ProgressUpdate
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*p = ProgressUpdate(out)
	return nil
}
