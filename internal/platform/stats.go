package platform

import "context"

// DashboardStats are the aggregate counts for the console landing view.
type DashboardStats struct {
	TotalClients   int `json:"totalClients"`
	TotalStudents  int `json:"totalStudents"`
	TotalMails     int `json:"totalMails"`
	TotalInquiries int `json:"totalInquiries"`
}

// RegistrationPoint is one bucket of the user-registration chart.
type RegistrationPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GetDashboardStats fetches the landing-view counts.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.getJSON(ctx, "/profile/dashboard-stats", &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// GetRegistrationStats fetches the registration time series.
func (c *Client) GetRegistrationStats(ctx context.Context) ([]RegistrationPoint, error) {
	var points []RegistrationPoint
	if err := c.getJSON(ctx, "/profile/user-stats", &points); err != nil {
		return nil, err
	}
	return points, nil
}
