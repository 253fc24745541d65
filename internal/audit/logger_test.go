package audit

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

func TestLogger_WritesMetadataWithRequestID(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	id := uint(42)
	err = New(db).Log(context.Background(), Event{
		SalonID:   3,
		Action:    "appointment_status_changed",
		Entity:    "appointment",
		EntityID:  &id,
		RequestID: "req-1",
		Metadata:  map[string]any{"to": "completed"},
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	var row models.AuditLog
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("read: %v", err)
	}

	var meta map[string]any
	if err := json.Unmarshal(row.Metadata, &meta); err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta["request_id"] != "req-1" || meta["to"] != "completed" {
		t.Fatalf("metadata = %v", meta)
	}
	if row.EntityID == nil || *row.EntityID != 42 {
		t.Fatalf("entity id = %v", row.EntityID)
	}
}
