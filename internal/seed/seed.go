// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	RecordsPerKind int
	ShouldClean    bool
	// Cost is the bcrypt cost for the shared demo hash; zero means bcrypt.DefaultCost.
	Cost int
}

// Summary counts what a Seed run created.
type Summary struct {
	Users   int
	Records map[models.Kind]int
}

// Factory builds users and records and persists them through the repositories.
type Factory struct {
	db      *gorm.DB
	users   repository.UserRepository
	records repository.RecordRepository
	hash    string
}

// NewFactory creates a new Factory bound to the provided Gorm DB. All users
// it creates share one bcrypt hash of DemoPassword.
func NewFactory(db *gorm.DB, cost int) (*Factory, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:      db,
		users:   repository.NewUserRepository(db),
		records: repository.NewRecordRepository(db),
		hash:    string(hash),
	}, nil
}

// CreateUser persists a user with a random, valid username.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:     randomUsername(),
		PasswordHash: f.hash,
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecord persists a record of kind owned by owner. Roughly half of the
// seeded books are marked as read.
func (f *Factory) CreateRecord(ctx context.Context, kind models.Kind, owner *models.User) (*models.Record, error) {
	var title, content string
	switch kind {
	case models.KindJournal:
		title = gofakeit.Date().Format("Monday, January 2")
		content = gofakeit.Paragraph(2, 4, 12, "\n\n")
	case models.KindBook:
		title = gofakeit.BookTitle()
		content = fmt.Sprintf("%s. %s", gofakeit.BookAuthor(), gofakeit.Sentence(10))
	default:
		title = strings.TrimSuffix(gofakeit.Sentence(4), ".")
		content = gofakeit.Paragraph(3, 5, 15, "\n\n")
	}

	rec, err := f.records.Create(ctx, kind, title, content, owner.ID)
	if err != nil {
		return nil, err
	}

	if kind == models.KindBook && gofakeit.Bool() {
		if _, err := f.records.SetChecked(ctx, rec.ID, owner.ID, true); err != nil {
			return nil, err
		}
		rec.Checked = true
	}
	return rec, nil
}

// Seed populates the database with demo users and their records.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (*Summary, error) {
	log.Printf("🌱 Seeding %d users with %d records per kind...", opts.NumUsers, opts.RecordsPerKind)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			return nil, fmt.Errorf("failed to clear data: %w", err)
		}
	}

	f, err := NewFactory(db, opts.Cost)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Records: make(map[models.Kind]int, len(models.Kinds))}
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		summary.Users++

		for _, kind := range models.Kinds {
			for j := 0; j < opts.RecordsPerKind; j++ {
				if _, err := f.CreateRecord(ctx, kind, user); err != nil {
					return nil, fmt.Errorf("failed to create %s: %w", kind, err)
				}
				summary.Records[kind]++
			}
		}
	}

	log.Printf("✓ %d users created", summary.Users)
	for _, kind := range models.Kinds {
		log.Printf("✓ %d %s records created", summary.Records[kind], kind)
	}
	return summary, nil
}

// ClearAll removes every record and user. Child tables go first so it works
// whether or not foreign keys cascade.
func ClearAll(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, kind := range models.Kinds {
			if err := tx.Exec("DELETE FROM " + kind.Table()).Error; err != nil {
				return err
			}
		}
		return tx.Exec("DELETE FROM users").Error
	})
}

func randomUsername() string {
	base := strings.ToLower(gofakeit.Username())
	if len(base) > 24 {
		base = base[:24]
	}
	return fmt.Sprintf("%s%d", base, gofakeit.Number(100000, 999999))
}
