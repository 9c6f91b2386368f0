package a2a

// Extension URIs carried on discovery cards.
const (
	ExtensionURITools       = "https://solace.com/a2a/extensions/sam/tools"
	ExtensionURIGatewayRole = "https://solace.com/a2a/extensions/sam/gateway-role"
	ExtensionURIDeployment  = "https://solace.com/a2a/extensions/sam/deployment"
)

// AgentCard is the self-describing heartbeat record an agent publishes on
// the discovery topic.
type AgentCard struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Capabilities Capabilities   `json:"capabilities"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Capabilities groups card capability flags and typed extensions.
type Capabilities struct {
	Streaming  bool        `json:"streaming,omitempty"`
	Extensions []Extension `json:"extensions,omitempty"`
}

// Extension is one typed card extension, identified by URI.
type Extension struct {
	URI    string         `json:"uri"`
	Params map[string]any `json:"params,omitempty"`
}

// Tool describes one agent tool, as listed under the tools extension.
type Tool struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	RequiredScopes []string `json:"requiredScopes,omitempty"`
}

// extension returns the first extension with the given URI, if any.
func (c *AgentCard) extension(uri string) (Extension, bool) {
	for _, ext := range c.Capabilities.Extensions {
		if ext.URI == uri {
			return ext, true
		}
	}
	return Extension{}, false
}

// Tools decodes the tools extension. Absent or malformed entries yield nil.
func (c *AgentCard) Tools() []Tool {
	ext, ok := c.extension(ExtensionURITools)
	if !ok {
		return nil
	}
	rawList, ok := ext.Params["tools"].([]any)
	if !ok {
		return nil
	}
	tools := make([]Tool, 0, len(rawList))
	for _, raw := range rawList {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		tool := Tool{}
		if name, ok := m["name"].(string); ok {
			tool.Name = name
		}
		if desc, ok := m["description"].(string); ok {
			tool.Description = desc
		}
		if scopes, ok := m["requiredScopes"].([]any); ok {
			for _, s := range scopes {
				if str, ok := s.(string); ok {
					tool.RequiredScopes = append(tool.RequiredScopes, str)
				}
			}
		}
		tools = append(tools, tool)
	}
	return tools
}

// IsGateway reports whether the card carries the gateway-role extension,
// i.e. it describes a peer gateway rather than an agent.
func (c *AgentCard) IsGateway() bool {
	_, ok := c.extension(ExtensionURIGatewayRole)
	return ok
}

// GatewayType returns the gateway-role extension's gatewayType, or "".
func (c *AgentCard) GatewayType() string {
	ext, ok := c.extension(ExtensionURIGatewayRole)
	if !ok {
		return ""
	}
	v, _ := ext.Params["gatewayType"].(string)
	return v
}

// Namespace returns the gateway-role extension's namespace, or "".
func (c *AgentCard) Namespace() string {
	ext, ok := c.extension(ExtensionURIGatewayRole)
	if !ok {
		return ""
	}
	v, _ := ext.Params["namespace"].(string)
	return v
}

// DeploymentID returns the deployment extension's deploymentId, or "".
func (c *AgentCard) DeploymentID() string {
	ext, ok := c.extension(ExtensionURIDeployment)
	if !ok {
		return ""
	}
	v, _ := ext.Params["deploymentId"].(string)
	return v
}
