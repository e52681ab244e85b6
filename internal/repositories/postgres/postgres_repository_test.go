package postgres

import (
	"strings"
	"testing"
)

func TestRepositoryManager_Initialize_RequiresDatabase(t *testing.T) {
	manager := NewRepositoryManager(RepositoryConfig{})

	err := manager.Initialize()
	if err == nil {
		t.Fatal("Initialize succeeded without a database connection")
	}
	if !strings.Contains(err.Error(), "database connection is required") {
		t.Errorf("error = %v, want missing-database message", err)
	}

	if manager.GetRepository() != nil {
		t.Error("GetRepository returned a repository after failed Initialize")
	}
}
