package models

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type DashboardAnalytics struct {
	TotalBookings    int            `json:"totalBookings"`
	TotalRevenue     float64        `json:"totalRevenue"`
	ActiveMechanics  int            `json:"activeMechanics"`
	PendingRequests  int            `json:"pendingRequests"`
	BookingsByStatus map[string]int `json:"bookingsByStatus"`
	MonthlyRevenue   []RevenuePoint `json:"monthlyRevenue"`
}
