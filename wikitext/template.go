package wikitext

// parseTemplateStart handles '{' at state.ScanPosition. Three braces open a
// Parameter ({{{name|default}}}), two open a Template ({{name|args}}), one
// is left as plain text.
func parseTemplateStart(state *State) {
	start := state.ScanPosition
	switch {
	case state.GetByte(start+1) == '{' && state.GetByte(start+2) == '{':
		state.PushOpenNode(OpenNodeType{Kind: OpenParameter}, start+3)
	case state.GetByte(start+1) == '{':
		state.PushOpenNode(OpenNodeType{Kind: OpenTemplate, ParameterStart: start + 2}, start+2)
	default:
		state.ScanPosition = start + 1
	}
}

// parseTemplateParameterNameEnd handles '=' while a Template's current
// parameter has not yet seen one: the accumulated nodes so far settle as
// the parameter's name, and scanning continues to accumulate its value.
func parseTemplateParameterNameEnd(state *State) {
	top := &state.Stack[len(state.Stack)-1]
	state.Flush(state.ScanPosition)
	top.Type.Name = state.Nodes
	top.Type.HasName = true
	state.Nodes = nil
	state.FlushedPosition = state.ScanPosition + 1
	state.ScanPosition = state.FlushedPosition
}

// parseParameterNameEnd handles '=' while a Parameter frame's name (and not
// yet its default) is being accumulated: the name is settled from the
// accumulated nodes and scanning continues to accumulate the default.
func parseParameterNameEnd(state *State) {
	top := &state.Stack[len(state.Stack)-1]
	state.Flush(state.ScanPosition)
	top.Type.Name = state.Nodes
	top.Type.HasName = true
	state.Nodes = nil
	state.FlushedPosition = state.ScanPosition + 1
	state.ScanPosition = state.FlushedPosition
}

// parseParameterSeparator handles '|' inside a Parameter whose name was
// never terminated by '=': the first '|' makes the accumulated nodes so far
// the name; any later '|' raises UselessTextInParameter and is kept as
// plain text, matching the reference parser's tolerant handling.
func parseParameterSeparator(state *State) {
	top := &state.Stack[len(state.Stack)-1]
	if !top.Type.HasName {
		state.Flush(state.ScanPosition)
		top.Type.Name = state.Nodes
		top.Type.HasName = true
		state.Nodes = nil
		state.FlushedPosition = state.ScanPosition + 1
		state.ScanPosition = state.FlushedPosition
		return
	}
	state.Warnings = append(state.Warnings, Warning{
		Start:   state.ScanPosition,
		End:     state.ScanPosition + 1,
		Message: UselessTextInParameter,
	})
	state.ScanPosition++
}

// parseTemplateEnd handles '}' while a Parameter or Template frame is open.
// "}}}" closes a Parameter; "}}" closes a Template; anything else advances
// past one '}' as plain text. A Parameter frame whose name was never
// terminated settles its name here from whatever was accumulated.
func parseTemplateEnd(state *State) {
	top := state.Stack[len(state.Stack)-1]
	switch top.Type.Kind {
	case OpenParameter:
		if state.GetByte(state.ScanPosition+1) == '}' && state.GetByte(state.ScanPosition+2) == '}' {
			closeParameter(state, top)
			return
		}
		state.ScanPosition++
	case OpenTemplate:
		if state.GetByte(state.ScanPosition+1) == '}' {
			closeTemplate(state, top)
			return
		}
		state.ScanPosition++
	default:
		state.ScanPosition++
	}
}

func closeParameter(state *State, top OpenNode) {
	end := state.ScanPosition + 3
	state.Flush(state.ScanPosition)
	state.Stack = state.Stack[:len(state.Stack)-1]

	name := top.Type.Name
	var def []Node
	if top.Type.HasName {
		def = state.Nodes
	} else {
		name = state.Nodes
	}

	state.Nodes = append(top.Nodes, Parameter{
		span:    span{top.Start, end},
		Name:    name,
		Default: def,
	})
	state.FlushedPosition = end
	state.ScanPosition = end
}

func closeTemplate(state *State, top OpenNode) {
	end := state.ScanPosition + 2
	state.Flush(state.ScanPosition)
	state.Stack = state.Stack[:len(state.Stack)-1]

	parameters := top.Type.TemplateParameters
	name := top.Type.TemplateName
	if top.Type.HasTemplateName {
		param := TemplateParameter{
			span:  span{top.Type.ParameterStart, end},
			Value: state.Nodes,
		}
		if top.Type.HasName {
			param.Name = top.Type.Name
		}
		parameters = append(parameters, param)
	} else {
		name = state.Nodes
	}

	state.Nodes = append(top.Nodes, Template{
		span:       span{top.Start, end},
		Name:       name,
		Parameters: parameters,
	})
	state.FlushedPosition = end
	state.ScanPosition = end
}

// parseTemplateSeparator handles '|' inside a Template: the first
// occurrence settles the template's name from whatever was accumulated so
// far; every subsequent occurrence commits the current accumulation as one
// more TemplateParameter (named, if an '=' was seen inside it, else
// positional) and starts accumulating the next parameter.
func parseTemplateSeparator(state *State) {
	top := &state.Stack[len(state.Stack)-1]
	start := state.ScanPosition
	state.Flush(start)

	if !top.Type.HasTemplateName {
		top.Type.TemplateName = state.Nodes
		top.Type.HasTemplateName = true
		top.Type.TemplateParameters = nil
	} else {
		param := TemplateParameter{
			span:  span{top.Type.ParameterStart, start},
			Value: state.Nodes,
		}
		if top.Type.HasName {
			param.Name = top.Type.Name
		}
		top.Type.TemplateParameters = append(top.Type.TemplateParameters, param)
	}
	top.Type.HasName = false
	top.Type.Name = nil
	top.Type.ParameterStart = start + 1
	state.Nodes = nil
	state.FlushedPosition = start + 1
	state.ScanPosition = state.FlushedPosition
}
