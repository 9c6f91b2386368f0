package a2a

import "strings"

// Topic taxonomy. The namespace always carries a trailing slash in topic
// form; Namespace() normalizes.

// NormalizeNamespace ensures a single trailing slash.
func NormalizeNamespace(ns string) string {
	return strings.TrimRight(ns, "/") + "/"
}

// AgentRequestTopic is where an agent receives requests.
func AgentRequestTopic(namespace, agentName string) string {
	return NormalizeNamespace(namespace) + "a2a/v1/agent/" + agentName + "/request"
}

// GatewayResponseTopic is where this gateway instance receives task
// responses; carried as the request's replyTo user-property.
func GatewayResponseTopic(namespace, gatewayID string) string {
	return NormalizeNamespace(namespace) + "a2a/v1/gateway/response/" + gatewayID
}

// GatewayStatusTopic is where this gateway instance receives intermediate
// status updates; carried as the request's a2aStatusTopic user-property.
func GatewayStatusTopic(namespace, gatewayID string) string {
	return NormalizeNamespace(namespace) + "a2a/v1/gateway/status/" + gatewayID
}

// SchedulerResponseTopic is where a scheduler instance receives responses
// for scheduled executions.
func SchedulerResponseTopic(namespace, instanceID string) string {
	return NormalizeNamespace(namespace) + "a2a/v1/scheduler/response/" + instanceID
}

// DiscoveryTopic is where agent and gateway cards are heartbeated. Ignored
// by the task logger.
func DiscoveryTopic(namespace string) string {
	return NormalizeNamespace(namespace) + "a2a/v1/discovery/agentcards"
}

// IsDiscoveryTopic reports whether topic is under the discovery subtree.
func IsDiscoveryTopic(topic string) bool {
	return strings.Contains(topic, "/discovery/agentcards")
}

// ToSubject converts a slash-delimited topic to the bus subject form.
// The bus uses dots as level separators; slashes never appear in ids, so
// the mapping is reversible.
func ToSubject(topic string) string {
	return strings.ReplaceAll(strings.Trim(topic, "/"), "/", ".")
}
