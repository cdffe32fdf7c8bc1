package remote

import (
	"time"

	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/domain/land"
	"github.com/agrilease/agrilease/internal/app/domain/lease"
	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// seed loads a small demo dataset: two owners, two seekers, four listings,
// two lease requests and one conversation. IDs are stable so demo flows and
// tests can reference them.
func (m *Memory) seed() {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	users := []user.User{
		{ID: "owner-1", Name: "Ramesh Patil", Mobile: "9876543210", Aadhar: "1234-5678-9012", Role: user.RoleOwner, IsVerified: true, CreatedAt: base},
		{ID: "owner-2", Name: "Lakshmi Reddy", Mobile: "9876500011", Aadhar: "2345-6789-0123", Role: user.RoleOwner, IsVerified: true, CreatedAt: base.Add(time.Hour)},
		{ID: "seeker-1", Name: "Arjun Kumar", Mobile: "9123456780", Aadhar: "3456-7890-1234", Role: user.RoleSeeker, IsVerified: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "seeker-2", Name: "Meena Joshi", Mobile: "9123400022", Aadhar: "4567-8901-2345", Role: user.RoleSeeker, IsVerified: true, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, u := range users {
		m.users[u.ID] = u
	}

	lat1, lng1 := 18.5204, 73.8567
	lat2, lng2 := 17.3850, 78.4867
	lands := []land.Land{
		{
			ID: "land-1", OwnerID: "owner-1", OwnerName: "Ramesh Patil", OwnerMobile: "9876543210",
			Title: "Fertile 5 Acre Plot near Pune",
			Location: land.Location{State: "Maharashtra", District: "Pune", Village: "Shirur", Pincode: "412210"},
			Latitude: &lat1, Longitude: &lng1,
			Area: 5, SoilType: land.SoilBlack, WaterSource: land.WaterBorewell,
			Crops: []string{"sugarcane", "wheat"}, PricePerAcre: 12000, PricePerMonth: 5000,
			MinLeasePeriod: 12, MaxLeasePeriod: 36,
			Description: "Well-maintained plot with road access and year-round borewell supply.",
			Images:      []string{"https://images.agrilease.dev/land-1.jpg"},
			Available:   true, Facilities: []string{"borewell", "fencing", "storage shed"},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "land-2", OwnerID: "owner-1", OwnerName: "Ramesh Patil", OwnerMobile: "9876543210",
			Title: "Canal-fed Paddy Land",
			Location: land.Location{State: "Maharashtra", District: "Kolhapur", Village: "Kagal", Pincode: "416216"},
			Area: 3, SoilType: land.SoilAlluvial, WaterSource: land.WaterCanal,
			Crops: []string{"rice"}, PricePerAcre: 9000, PricePerMonth: 3200,
			MinLeasePeriod: 6, MaxLeasePeriod: 24,
			Description: "Low-lying field suited to paddy, canal water shared on rotation.",
			Images:      []string{"https://images.agrilease.dev/land-2.jpg"},
			Available:   true, Facilities: []string{"canal access"},
			CreatedAt: base.Add(26 * time.Hour),
		},
		{
			ID: "land-3", OwnerID: "owner-2", OwnerName: "Lakshmi Reddy", OwnerMobile: "9876500011",
			Title: "Red Soil Orchard Plot",
			Location: land.Location{State: "Telangana", District: "Rangareddy", Village: "Chevella", Pincode: "501503"},
			Latitude: &lat2, Longitude: &lng2,
			Area: 8, SoilType: land.SoilRed, WaterSource: land.WaterMixed,
			Crops: []string{"mango", "guava"}, PricePerAcre: 15000, PricePerMonth: 8500,
			MinLeasePeriod: 24, MaxLeasePeriod: 60,
			Description: "Established orchard with drip irrigation lines in place.",
			Images:      []string{"https://images.agrilease.dev/land-3.jpg", "https://images.agrilease.dev/land-3b.jpg"},
			Available:   true, Facilities: []string{"drip irrigation", "farm house"},
			CreatedAt: base.Add(30 * time.Hour),
		},
		{
			ID: "land-4", OwnerID: "owner-2", OwnerName: "Lakshmi Reddy", OwnerMobile: "9876500011",
			Title: "Rainfed Dryland Parcel",
			Location: land.Location{State: "Telangana", District: "Nalgonda", Village: "Devarakonda", Pincode: "508248"},
			Area: 10, SoilType: land.SoilSandy, WaterSource: land.WaterRainwater,
			Crops: []string{"millet", "groundnut"}, PricePerAcre: 4000, PricePerMonth: 2500,
			MinLeasePeriod: 6, MaxLeasePeriod: 12,
			Description: "Seasonal dryland, best for kharif millets.",
			Images:      []string{"https://images.agrilease.dev/land-4.jpg"},
			Available:   false, Facilities: nil,
			CreatedAt: base.Add(36 * time.Hour),
		},
	}
	for _, l := range lands {
		m.lands[l.ID] = l
	}

	requests := []lease.Request{
		{
			ID: "req-1", LandID: "land-1",
			SeekerID: "seeker-1", SeekerName: "Arjun Kumar", SeekerMobile: "9123456780",
			OwnerID: "owner-1", OwnerName: "Ramesh Patil", OwnerMobile: "9876543210",
			LeasePeriod: 24, ProposedPrice: 4500,
			Message:   "Planning sugarcane over two seasons, open to discussing water sharing.",
			Status:    lease.StatusPending,
			CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "req-2", LandID: "land-3",
			SeekerID: "seeker-2", SeekerName: "Meena Joshi", SeekerMobile: "9123400022",
			OwnerID: "owner-2", OwnerName: "Lakshmi Reddy", OwnerMobile: "9876500011",
			LeasePeriod: 36, ProposedPrice: 8000,
			Message:   "",
			Status:    lease.StatusApproved,
			CreatedAt: base.Add(50 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
		},
	}
	for _, r := range requests {
		m.requests[r.ID] = r
	}

	convo := chat.ConversationID("owner-1", "seeker-1")
	messages := []chat.Message{
		{
			ID: "msg-1", ConversationID: convo,
			SenderID: "seeker-1", ReceiverID: "owner-1",
			Body:      "Namaste, is the Shirur plot still open for next season?",
			Timestamp: base.Add(49 * time.Hour), Read: true,
		},
		{
			ID: "msg-2", ConversationID: convo,
			SenderID: "owner-1", ReceiverID: "seeker-1",
			Body:      "Yes, available from June. Have you seen the borewell details?",
			Timestamp: base.Add(49*time.Hour + 10*time.Minute), Read: false,
		},
	}
	m.messages[convo] = append(m.messages[convo], messages...)
}
