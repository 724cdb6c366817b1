package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the console permission model and its CSV policy.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
