package budget

// Role is a player persona seated at the table.
type Role struct {
	ID          int
	Title       string
	Description string
	Dilemma     string
	Priorities  [2]Category
	Goal        Amount
	Seat        int // 0..5, clockwise from the +X axis
	Hint        string
}

// IsPriority reports whether c is one of the role's two priority categories.
func (r Role) IsPriority(c Category) bool {
	return r.Priorities[0] == c || r.Priorities[1] == c
}

// PriorityTopic is the topic shared by the role's priorities, e.g. "Research".
func (r Role) PriorityTopic() string {
	return r.Priorities[0].Topic()
}

var roleCatalog = [...]Role{
	{
		ID:          0,
		Title:       "Dean of Research",
		Description: "Focuses on advancing academic innovation",
		Dilemma:     "Needs $3M for a new lab, but Facilities are underfunded.",
		Priorities:  [2]Category{ResearchA, ResearchB},
		Goal:        3 * Million,
		Seat:        0,
		Hint:        "Try to secure at least $3M for Research while considering Facilities' needs.",
	},
	{
		ID:          1,
		Title:       "Research Advocate",
		Description: "Champions research initiatives and funding",
		Dilemma:     "Pushes for $2M more in Research, risking Scholarships.",
		Priorities:  [2]Category{ResearchA, ResearchB},
		Goal:        2 * Million,
		Seat:        1,
		Hint:        "Balance $2M Research funding while maintaining Scholarship support.",
	},
	{
		ID:          2,
		Title:       "Facilities Director",
		Description: "Oversees campus infrastructure",
		Dilemma:     "Requires $4M for campus upgrades, but Research is a priority.",
		Priorities:  [2]Category{FacilitiesA, FacilitiesB},
		Goal:        4 * Million,
		Seat:        2,
		Hint:        "Secure $4M for Facilities without compromising Research funding.",
	},
	{
		ID:          3,
		Title:       "Facilities Manager",
		Description: "Manages day-to-day facility operations",
		Dilemma:     "Needs $2M for maintenance, but Scholarships need support.",
		Priorities:  [2]Category{FacilitiesA, FacilitiesB},
		Goal:        2 * Million,
		Seat:        3,
		Hint:        "Obtain $2M for maintenance while supporting Scholarship programs.",
	},
	{
		ID:          4,
		Title:       "Scholarship Coordinator",
		Description: "Manages student financial aid programs",
		Dilemma:     "Demands $3M for student aid, but Facilities are crumbling.",
		Priorities:  [2]Category{ScholarshipsA, ScholarshipsB},
		Goal:        3 * Million,
		Seat:        4,
		Hint:        "Achieve $3M for Scholarships while addressing Facilities concerns.",
	},
	{
		ID:          5,
		Title:       "Student Advocate",
		Description: "Represents student interests and needs",
		Dilemma:     "Wants $2M more for Scholarships, risking Research cuts.",
		Priorities:  [2]Category{ScholarshipsA, ScholarshipsB},
		Goal:        2 * Million,
		Seat:        5,
		Hint:        "Get $2M for Scholarships without severely impacting Research.",
	},
}

// Roles returns the six roles in seat order. Each call returns a fresh copy.
func Roles() []Role {
	out := make([]Role, len(roleCatalog))
	copy(out, roleCatalog[:])
	return out
}

// RoleByID looks up a role in the catalog.
func RoleByID(id int) (Role, bool) {
	if id < 0 || id >= len(roleCatalog) {
		return Role{}, false
	}
	return roleCatalog[id], true
}
