package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/config"
	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/identity"
	"courtvista-backend/internal/messaging"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/schedule"
	"courtvista-backend/internal/store"

	"github.com/google/uuid"
)

const (
	seedPendingID   = "seed-consultation-pending"
	seedConfirmedID = "seed-consultation-confirmed"
	seedGreetingID  = "seed-message-greeting"
)

type seedAccount struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	LawyerID int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore(context.Background())

	if cfg.StoreBackend == config.StoreMemory {
		log.Printf("seed: memory store selected, records will not outlive this process")
	}

	lawyer, ok := catalog.LawyerByID(1)
	if !ok {
		log.Fatal("seed: catalog lawyer 1 missing")
	}

	accounts := identity.NewAccountRepository(kv, logger)
	user, err := upsertAccount(ctx, accounts, seedAccount{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "priya123",
		Role:     models.RoleUser,
	}, cfg.Timezone)
	if err != nil {
		log.Fatalf("seed account error: %v", err)
	}
	counsel, err := upsertAccount(ctx, accounts, seedAccount{
		Name:     lawyer.Name,
		Email:    "rajesh@example.com",
		Password: "rajesh123",
		Role:     models.RoleLawyer,
		LawyerID: lawyer.ID,
	}, cfg.Timezone)
	if err != nil {
		log.Fatalf("seed account error: %v", err)
	}

	now := time.Now().In(cfg.Timezone)
	base := models.Consultation{
		LawyerID:     lawyer.ID,
		LawyerName:   lawyer.Name,
		ClientUserID: user.ID,
		ClientName:   user.Name,
		ClientEmail:  user.Email,
		Phone:        "+91 98765 43210",
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	slots := schedule.Slots()

	pending := base
	pending.ID = seedPendingID
	pending.CaseType, pending.CaseTypeName = areaOf("criminal")
	pending.Date = now.AddDate(0, 0, 3).Format(schedule.DateLayout)
	pending.Time = slots[1]
	pending.Message = "I need advice on an anticipatory bail application."
	pending.Status = models.StatusPending

	confirmed := base
	confirmed.ID = seedConfirmedID
	confirmed.CaseType, confirmed.CaseTypeName = areaOf("civil")
	confirmed.Date = now.AddDate(0, 0, 5).Format(schedule.DateLayout)
	confirmed.Time = slots[3]
	confirmed.Message = "Recovery suit against a former business partner."
	confirmed.Status = models.StatusConfirmed

	repo := consultations.NewRepository(kv, logger)
	err = repo.Update(ctx, func(items []models.Consultation) ([]models.Consultation, error) {
		for _, c := range []models.Consultation{pending, confirmed} {
			if !containsConsultation(items, c.ID) {
				items = append(items, c)
			}
		}
		return items, nil
	})
	if err != nil {
		log.Fatalf("seed consultations error: %v", err)
	}

	greeting := models.Message{
		ID:             seedGreetingID,
		ConversationID: seedConfirmedID,
		SenderID:       counsel.ID,
		SenderName:     counsel.Name,
		SenderRole:     models.RoleLawyer,
		Text:           "Hello " + user.Name + ", your consultation is confirmed. Please bring any documents you have.",
		Timestamp:      now.UTC(),
	}
	err = messaging.NewRepository(kv, logger).Update(ctx, func(items []models.Message) ([]models.Message, error) {
		for _, m := range items {
			if m.ID == greeting.ID {
				return items, nil
			}
		}
		return append(items, greeting), nil
	})
	if err != nil {
		log.Fatalf("seed messages error: %v", err)
	}

	log.Println("seed completed")
}

// upsertAccount creates the account or refreshes its password, role and
// lawyer link when the email is already registered.
func upsertAccount(ctx context.Context, accounts identity.AccountRepository, in seedAccount, loc *time.Location) (models.Account, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.Account{}, err
	}
	email := strings.ToLower(in.Email)

	var out models.Account
	err = accounts.Update(ctx, func(items []models.Account) ([]models.Account, error) {
		for i := range items {
			if items[i].Email != email {
				continue
			}
			items[i].Password = hash
			items[i].Role = in.Role
			if in.LawyerID > 0 {
				id := in.LawyerID
				items[i].LawyerID = &id
			}
			out = items[i]
			return items, nil
		}

		acc := models.Account{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Email:     email,
			Password:  hash,
			Role:      in.Role,
			CreatedAt: time.Now().In(loc),
		}
		if in.LawyerID > 0 {
			id := in.LawyerID
			acc.LawyerID = &id
		}
		out = acc
		return append(items, acc), nil
	})
	return out, err
}

func areaOf(id string) (string, string) {
	area, ok := catalog.AreaByID(id)
	if !ok {
		return "", ""
	}
	return area.ID, area.Name
}

func containsConsultation(items []models.Consultation, id string) bool {
	for _, c := range items {
		if c.ID == id {
			return true
		}
	}
	return false
}
