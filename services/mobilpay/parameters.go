package mobilpay

type ParameterSetter interface {
	SetParameter(name string, value any)
}

func parameterName(option string) string {
	return Alias + "." + option
}

// assignParametersToContainer performs exactly one SetParameter per option.
func assignParametersToContainer(params ParameterSetter, config NormalizedConfig) {
	for _, option := range options {
		params.SetParameter(parameterName(option), config.Get(option))
	}
}
