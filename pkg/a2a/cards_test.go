package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gatewayCard() *AgentCard {
	return &AgentCard{
		Name: "gw-1",
		Capabilities: Capabilities{
			Streaming: true,
			Extensions: []Extension{
				{
					URI: ExtensionURIGatewayRole,
					Params: map[string]any{
						"gatewayType": "webui",
						"namespace":   "sam",
					},
				},
				{
					URI:    ExtensionURIDeployment,
					Params: map[string]any{"deploymentId": "deploy-7"},
				},
			},
		},
	}
}

func TestAgentCardGatewayExtensions(t *testing.T) {
	card := gatewayCard()
	assert.True(t, card.IsGateway())
	assert.Equal(t, "webui", card.GatewayType())
	assert.Equal(t, "sam", card.Namespace())
	assert.Equal(t, "deploy-7", card.DeploymentID())
}

func TestAgentCardWithoutExtensions(t *testing.T) {
	card := &AgentCard{Name: "weather"}
	assert.False(t, card.IsGateway())
	assert.Equal(t, "", card.GatewayType())
	assert.Equal(t, "", card.Namespace())
	assert.Equal(t, "", card.DeploymentID())
	assert.Nil(t, card.Tools())
}

func TestAgentCardTools(t *testing.T) {
	card := &AgentCard{
		Name: "weather",
		Capabilities: Capabilities{
			Extensions: []Extension{{
				URI: ExtensionURITools,
				Params: map[string]any{
					"tools": []any{
						map[string]any{
							"name":           "forecast",
							"description":    "7-day forecast",
							"requiredScopes": []any{"weather:read"},
						},
						"not-a-tool-object",
					},
				},
			}},
		},
	}

	tools := card.Tools()
	assert.Len(t, tools, 1)
	assert.Equal(t, "forecast", tools[0].Name)
	assert.Equal(t, "7-day forecast", tools[0].Description)
	assert.Equal(t, []string{"weather:read"}, tools[0].RequiredScopes)
}
