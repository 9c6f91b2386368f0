package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// tasksFile is the declarative provisioning format loaded at startup.
type tasksFile struct {
	Tasks []taskDefinition `yaml:"tasks"`
}

type taskDefinition struct {
	Name               string           `yaml:"name"`
	ScheduleType       string           `yaml:"schedule_type"`
	ScheduleExpression string           `yaml:"schedule_expression"`
	Timezone           string           `yaml:"timezone"`
	TargetAgentName    string           `yaml:"target_agent_name"`
	Message            string           `yaml:"message"`
	Metadata           map[string]any   `yaml:"metadata"`
	Enabled            *bool            `yaml:"enabled"`
	TimeoutSeconds     int              `yaml:"timeout_seconds"`
	MaxRetries         int              `yaml:"max_retries"`
	RetryDelaySeconds  int              `yaml:"retry_delay_seconds"`
	Parts              []map[string]any `yaml:"parts"`
}

// importerUser owns provisioned tasks; they are namespace-level so every
// member can see and run them.
const importerUser = "system"

// ImportTasksFile provisions scheduled tasks from a YAML file. Tasks are
// matched by name within the namespace: existing ones are left untouched,
// so the file is safe to load on every startup. Triggers are validated with
// the same parsing as the API path; an invalid definition skips that task
// only.
func ImportTasksFile(ctx context.Context, store *Store, client *ent.Client, namespace, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tasks file %s: %w", path, err)
	}

	var file tasksFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse tasks file %s: %w", path, err)
	}

	imported := 0
	for _, def := range file.Tasks {
		created, err := importTask(ctx, store, client, namespace, def)
		if err != nil {
			slog.Error("Skipping invalid scheduled task definition",
				"name", def.Name, "file", path, "error", err)
			continue
		}
		if created {
			imported++
		}
	}
	slog.Info("Scheduled tasks file loaded",
		"file", path, "defined", len(file.Tasks), "imported", imported)
	return nil
}

// importTask creates one task unless a live task of the same name exists.
func importTask(ctx context.Context, store *Store, client *ent.Client, namespace string, def taskDefinition) (bool, error) {
	if def.Name == "" {
		return false, services.NewValidationError("name", "required")
	}

	exists, err := client.ScheduledTask.Query().
		Where(
			scheduledtask.Namespace(namespace),
			scheduledtask.Name(def.Name),
			scheduledtask.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return false, classifyErr("check existing scheduled task", err)
	}
	if exists {
		return false, nil
	}

	parts := def.Parts
	if len(parts) == 0 && def.Message != "" {
		parts = []map[string]any{{"kind": "text", "text": def.Message}}
	}

	_, err = store.Create(ctx, importerUser, models.CreateScheduledTaskRequest{
		Name:               def.Name,
		ScheduleType:       def.ScheduleType,
		ScheduleExpression: def.ScheduleExpression,
		Timezone:           def.Timezone,
		TargetAgentName:    def.TargetAgentName,
		TaskMessage:        parts,
		TaskMetadata:       def.Metadata,
		Enabled:            def.Enabled,
		MaxRetries:         def.MaxRetries,
		RetryDelaySeconds:  def.RetryDelaySeconds,
		TimeoutSeconds:     def.TimeoutSeconds,
		NamespaceLevel:     true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
