package syntax

// Base returns the token set shared by every grammar: delimiters and
// statement punctuation only.
func Base() *Config {
	return &Config{
		Name:        "base",
		Terminator:  ";",
		Delim:       ",",
		ParamsStart: "_{",
		ParamsStop:  "}",
		ParenLeft:   "(",
		ParenRight:  ")",
	}
}

// condition layers the logical and comparison operators onto a config.
func condition(c *Config) *Config {
	c.NotOp = "not"
	c.AndOp = "and"
	c.OrOp = "or"

	c.EqualOp = "="
	c.NotEqualOp = "!="
	c.NotEqualAltOp = "<>"
	c.LessThanOp = "<"
	c.LessThanEqualOp = "<="
	c.GreaterThanOp = ">"
	c.GreaterThanEqualOp = ">="
	return c
}

// Core returns the core relational algebra configuration: project,
// rename, select, assignment, cross join, union and difference.
func Core() *Config {
	c := condition(Base())
	c.Name = "core"

	c.ProjectOp = `\project`
	c.RenameOp = `\rename`
	c.SelectOp = `\select`
	c.AssignOp = ":="
	c.JoinOp = `\join`
	c.DifferenceOp = `\difference`
	c.UnionOp = `\union`
	return c
}

// ThreeVL returns the three-valued logic configuration: the core grammar
// plus the defined() predicate for nullable attributes.
func ThreeVL() *Config {
	c := Core()
	c.Name = "threevl"
	c.DefinedOp = "defined"
	return c
}

// Extended returns the extended relational algebra configuration, adding
// theta, natural and outer joins, intersection, and defined().
func Extended() *Config {
	c := Core()
	c.Name = "extended"

	c.ThetaJoinOp = `\theta_join`
	c.NaturalJoinOp = `\natural_join`
	c.FullOuterJoinOp = `\full_outer_join`
	c.LeftOuterJoinOp = `\left_outer_join`
	c.RightOuterJoinOp = `\right_outer_join`
	c.IntersectOp = `\intersect`

	c.DefinedOp = "defined"
	return c
}

// Dependency returns the dependency grammar configuration: the extended
// grammar plus primary key, multivalued, functional and inclusion
// dependency statements.
func Dependency() *Config {
	c := Extended()
	c.Name = "dependency"

	c.PKOp = "pk"
	c.MVDOp = "mvd"
	c.FDOp = "fd"
	c.IncEquivOp = "inc="
	c.IncSubsetOp = "inc⊆"
	return c
}

func init() {
	Register(Core())
	Register(ThreeVL())
	Register(Extended())
	Register(Dependency())
}
