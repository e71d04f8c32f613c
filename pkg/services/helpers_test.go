package services

import (
	"context"
	"testing"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/pkg/models"
	testdb "github.com/dirigent-io/dirigent/test/database"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t).Client
}

func createTestNamespace(t *testing.T, client *ent.Client, name string) *ent.Namespace {
	t.Helper()
	ns, err := NewNamespaceService(client).Create(context.Background(), models.CreateNamespaceRequest{Name: name})
	require.NoError(t, err)
	return ns
}

func createTestAssignment(t *testing.T, client *ent.Client, namespaceID, northStar string) *ent.Assignment {
	t.Helper()
	asg, err := NewAssignmentService(client, nil).Create(context.Background(), models.CreateAssignmentRequest{
		NamespaceID: namespaceID,
		NorthStar:   northStar,
	})
	require.NoError(t, err)
	return asg
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

func intptr(i int) *int { return &i }
