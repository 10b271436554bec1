package main

import (
	"fmt"
	"log"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/internal/pricing"
	"courtly/internal/shared/config"
	"courtly/internal/shared/database"
	"courtly/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Courtly database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed, database is ready.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"waitlist_entries",
		"booking_equipment",
		"bookings",
		"pricing_rules",
		"coach_availability",
		"coaches",
		"equipment",
		"courts",
		"users",
	}

	pg := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := pg.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedCourts(); err != nil {
		return err
	}
	if err := s.seedEquipment(); err != nil {
		return err
	}
	if err := s.seedCoaches(); err != nil {
		return err
	}
	return s.seedPricingRules()
}

func (s *Seeder) seedUsers() error {
	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(hashed)
	}

	seedUsers := []users.User{
		{FirstName: "Admin", LastName: "User", Email: "admin@courtly.dev", Password: hash("admin1234"), Role: users.RoleAdmin},
		{FirstName: "Alice", LastName: "Chen", Email: "alice@example.com", Password: hash("password1"), Role: users.RoleUser},
		{FirstName: "Bob", LastName: "Park", Email: "bob@example.com", Password: hash("password2"), Role: users.RoleUser},
	}
	if err := s.db.GetPostgreSQL().Create(&seedUsers).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	fmt.Printf("  seeded %d users\n", len(seedUsers))
	return nil
}

func (s *Seeder) seedCourts() error {
	seedCourts := []courts.Court{
		{Name: "Court 1", CourtType: courts.CourtTypeIndoor, BaseHourlyRate: 60, IsActive: true},
		{Name: "Court 2", CourtType: courts.CourtTypeIndoor, BaseHourlyRate: 60, IsActive: true},
		{Name: "Court 3", CourtType: courts.CourtTypeOutdoor, BaseHourlyRate: 40, IsActive: true},
		{Name: "Court 4", CourtType: courts.CourtTypeOutdoor, BaseHourlyRate: 40, IsActive: true},
	}
	if err := s.db.GetPostgreSQL().Create(&seedCourts).Error; err != nil {
		return fmt.Errorf("failed to seed courts: %w", err)
	}
	fmt.Printf("  seeded %d courts\n", len(seedCourts))
	return nil
}

func (s *Seeder) seedEquipment() error {
	items := []equipment.Equipment{
		{Name: "Yonex Racket", EquipmentType: equipment.EquipmentTypeRacket, TotalQuantity: 10, HourlyRate: 5, IsActive: true},
		{Name: "Court Shoes", EquipmentType: equipment.EquipmentTypeShoes, TotalQuantity: 8, HourlyRate: 3, IsActive: true},
		{Name: "Shuttlecock Tube", EquipmentType: equipment.EquipmentTypeShuttlecock, TotalQuantity: 20, HourlyRate: 2, IsActive: true},
	}
	if err := s.db.GetPostgreSQL().Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed equipment: %w", err)
	}
	fmt.Printf("  seeded %d equipment items\n", len(items))
	return nil
}

func (s *Seeder) seedCoaches() error {
	pg := s.db.GetPostgreSQL()

	seedCoaches := []coaches.Coach{
		{Name: "Coach Sarah", Specialty: "Singles technique", HourlyRate: 35, IsActive: true},
		{Name: "Coach Dmitri", Specialty: "Doubles strategy", HourlyRate: 45, IsActive: true},
	}
	if err := pg.Create(&seedCoaches).Error; err != nil {
		return fmt.Errorf("failed to seed coaches: %w", err)
	}

	weekdays := []coaches.DayOfWeek{coaches.Monday, coaches.Tuesday, coaches.Wednesday, coaches.Thursday, coaches.Friday}
	var windows []coaches.CoachAvailability
	for _, day := range weekdays {
		windows = append(windows, coaches.CoachAvailability{
			CoachID: seedCoaches[0].ID, DayOfWeek: day, StartTime: "09:00", EndTime: "17:00",
		})
	}
	for _, day := range []coaches.DayOfWeek{coaches.Saturday, coaches.Sunday} {
		windows = append(windows, coaches.CoachAvailability{
			CoachID: seedCoaches[1].ID, DayOfWeek: day, StartTime: "08:00", EndTime: "20:00",
		})
	}
	if err := pg.Create(&windows).Error; err != nil {
		return fmt.Errorf("failed to seed coach availability: %w", err)
	}

	fmt.Printf("  seeded %d coaches with %d availability windows\n", len(seedCoaches), len(windows))
	return nil
}

func (s *Seeder) seedPricingRules() error {
	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	rules := []pricing.PricingRule{
		{
			Name:     "Weekend Rate",
			RuleType: pricing.RuleTypeWeekend, Multiplier: 1.25, FlatFee: 0,
			IsActive: true, Priority: 1,
		},
		{
			Name:     "Peak Hours",
			RuleType: pricing.RuleTypePeakHours, Multiplier: 1.3, FlatFee: 0,
			StartHour: intPtr(18), EndHour: intPtr(21),
			IsActive: true, Priority: 2,
		},
		{
			Name:     "Indoor Premium",
			RuleType: pricing.RuleTypeCourtType, Multiplier: 1, FlatFee: 10,
			AppliesToCourtType: strPtr(string(courts.CourtTypeIndoor)),
			IsActive:           true, Priority: 3,
		},
	}
	if err := s.db.GetPostgreSQL().Create(&rules).Error; err != nil {
		return fmt.Errorf("failed to seed pricing rules: %w", err)
	}
	fmt.Printf("  seeded %d pricing rules\n", len(rules))
	return nil
}
