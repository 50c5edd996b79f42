package models

type DashboardStats struct {
	BreakfastCount    int     `json:"breakfast_count"`
	LunchCount        int     `json:"lunch_count"`
	DinnerCount       int     `json:"dinner_count"`
	TotalGuestRevenue float64 `json:"total_guest_revenue"`
}

type RechargeRequest struct {
	GuestID int     `json:"guestId"`
	Amount  float64 `json:"amount"`
}

type RechargeResponse struct {
	NewBalance float64 `json:"new_balance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
