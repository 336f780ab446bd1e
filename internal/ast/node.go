package ast

func (b *Block) NodePos() Position               { return b.Pos }
func (f *FunctionDefinition) NodePos() Position  { return f.Pos }
func (v *VariableDeclaration) NodePos() Position { return v.Pos }
func (a *Assignment) NodePos() Position          { return a.Pos }
func (e *ExpressionStatement) NodePos() Position { return e.Pos }
func (i *If) NodePos() Position                  { return i.Pos }
func (s *Switch) NodePos() Position              { return s.Pos }
func (f *ForLoop) NodePos() Position             { return f.Pos }
func (b *Break) NodePos() Position               { return b.Pos }
func (c *Continue) NodePos() Position            { return c.Pos }
func (l *Leave) NodePos() Position               { return l.Pos }
func (c *FunctionCall) NodePos() Position        { return c.Pos }
func (i *Identifier) NodePos() Position          { return i.Pos }
func (l *Literal) NodePos() Position             { return l.Pos }

func (*Block) isStatement()               {}
func (*FunctionDefinition) isStatement()  {}
func (*VariableDeclaration) isStatement() {}
func (*Assignment) isStatement()          {}
func (*ExpressionStatement) isStatement() {}
func (*If) isStatement()                  {}
func (*Switch) isStatement()              {}
func (*ForLoop) isStatement()             {}
func (*Break) isStatement()               {}
func (*Continue) isStatement()            {}
func (*Leave) isStatement()               {}

func (*FunctionCall) isExpression() {}
func (*Identifier) isExpression()   {}
func (*Literal) isExpression()      {}
