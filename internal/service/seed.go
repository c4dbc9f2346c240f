package service

import "github.com/wayfarer-labs/tripweaver/backend/internal/domain"

// seedDestinations is the built-in destination catalog inserted by
// DestinationService.Seed on first startup. Budgets are rough per-day costs.
var seedDestinations = []domain.Destination{
	{
		Name:               "Paris",
		Country:            "France",
		Description:        "The City of Light, famous for its art, fashion, gastronomy, and culture.",
		PopularAttractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Arc de Triomphe", "Champs-Élysées"},
		BestTimeToVisit:    "April to June, September to October",
		AverageBudget:      domain.BudgetTiers{Budget: 100, MidRange: 180, Luxury: 300},
		Tags:               []string{"romantic", "culture", "art", "fashion", "cuisine"},
	},
	{
		Name:               "Tokyo",
		Country:            "Japan",
		Description:        "A bustling metropolis blending traditional culture with cutting-edge technology.",
		PopularAttractions: []string{"Senso-ji Temple", "Tokyo Skytree", "Shibuya Crossing", "Meiji Shrine", "Tsukiji Fish Market"},
		BestTimeToVisit:    "March to May, September to November",
		AverageBudget:      domain.BudgetTiers{Budget: 120, MidRange: 220, Luxury: 400},
		Tags:               []string{"technology", "culture", "food", "temples", "modern"},
	},
	{
		Name:               "New York City",
		Country:            "United States",
		Description:        "The Big Apple, a global hub for finance, arts, fashion, and culture.",
		PopularAttractions: []string{"Statue of Liberty", "Central Park", "Times Square", "Empire State Building", "Brooklyn Bridge"},
		BestTimeToVisit:    "April to June, September to November",
		AverageBudget:      domain.BudgetTiers{Budget: 150, MidRange: 280, Luxury: 500},
		Tags:               []string{"urban", "culture", "shopping", "broadway", "museums"},
	},
	{
		Name:               "Bali",
		Country:            "Indonesia",
		Description:        "Tropical paradise known for its beaches, temples, and vibrant culture.",
		PopularAttractions: []string{"Tanah Lot Temple", "Ubud Rice Terraces", "Mount Batur", "Seminyak Beach", "Sacred Monkey Forest"},
		BestTimeToVisit:    "April to October",
		AverageBudget:      domain.BudgetTiers{Budget: 50, MidRange: 100, Luxury: 200},
		Tags:               []string{"beach", "temples", "nature", "relaxation", "tropical"},
	},
	{
		Name:               "Rome",
		Country:            "Italy",
		Description:        "The Eternal City, rich in history, art, and culinary traditions.",
		PopularAttractions: []string{"Colosseum", "Vatican City", "Trevi Fountain", "Roman Forum", "Pantheon"},
		BestTimeToVisit:    "April to June, September to October",
		AverageBudget:      domain.BudgetTiers{Budget: 80, MidRange: 150, Luxury: 250},
		Tags:               []string{"history", "art", "cuisine", "ancient", "culture"},
	},
	{
		Name:               "London",
		Country:            "United Kingdom",
		Description:        "A historic city blending royal heritage with modern innovation.",
		PopularAttractions: []string{"Big Ben", "Tower of London", "British Museum", "London Eye", "Buckingham Palace"},
		BestTimeToVisit:    "May to September",
		AverageBudget:      domain.BudgetTiers{Budget: 120, MidRange: 200, Luxury: 350},
		Tags:               []string{"history", "royal", "museums", "culture", "parks"},
	},
}
