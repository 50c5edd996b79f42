package models

type MenuItem struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	EstimatedPrepTime int     `json:"estimated_prep_time"`
	MonthlyLimit      int     `json:"monthly_limit"`
	ExtraPrice        float64 `json:"extra_price"`
}

// MenuItemInput is the create/update payload; the backend assigns the id.
type MenuItemInput struct {
	Name              string  `json:"name"`
	EstimatedPrepTime int     `json:"estimated_prep_time"`
	MonthlyLimit      int     `json:"monthly_limit"`
	ExtraPrice        float64 `json:"extra_price"`
}

type MenuItemList struct {
	MenuItems []MenuItem `json:"menu_items"`
}

type AddMenuItemResponse struct {
	Item MenuItem `json:"item"`
}

// WeeklyMenuRequest assigns menu items to meal slots for each day of
// the upcoming week.
type WeeklyMenuRequest struct {
	Days []WeeklyMenuDay `json:"days"`
}

type WeeklyMenuDay struct {
	Day       string `json:"day"`
	Breakfast []int  `json:"breakfast"`
	Lunch     []int  `json:"lunch"`
	Dinner    []int  `json:"dinner"`
}
