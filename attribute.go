package svgdom

// Namespace prefixes the DOM understands. Everything else is opaque.
const (
	NSNone  = ""
	NSXml   = "xml"
	NSXlink = "xlink"
)

// QName is a qualified attribute name: an optional namespace prefix plus a
// known attribute id or a free-form local name.
type QName struct {
	Space string
	ID    AttributeID
	Local string // used when ID == AttrUnknown
}

// AName builds a QName for a known unprefixed attribute.
func AName(id AttributeID) QName { return QName{ID: id} }

// XlinkName builds a QName in the xlink namespace.
func XlinkName(id AttributeID) QName { return QName{Space: NSXlink, ID: id} }

// XMLName builds a QName in the xml namespace.
func XMLName(id AttributeID) QName { return QName{Space: NSXml, ID: id} }

func (q QName) String() string {
	local := q.Local
	if q.ID != AttrUnknown {
		local = q.ID.String()
	}
	if q.Space != "" {
		return q.Space + ":" + local
	}
	return local
}

// Attribute is a (name, typed value) pair. Invisible attributes are kept in
// the DOM but skipped by the writer unless WriteHiddenAttributes is set.
type Attribute struct {
	Name    QName
	Value   Value
	Visible bool
}

// Attributes is the ordered, key-unique attribute set of an element. Order
// is insertion order.
type Attributes struct {
	owner *Node
	list  []Attribute
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.list) }

func (a *Attributes) indexOf(name QName) int {
	for i := range a.list {
		if a.list[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of a known unprefixed attribute.
func (a *Attributes) Get(id AttributeID) (Value, bool) {
	return a.GetQ(AName(id))
}

// GetQ returns the value stored under a qualified name.
func (a *Attributes) GetQ(name QName) (Value, bool) {
	if i := a.indexOf(name); i >= 0 {
		return a.list[i].Value, true
	}
	return nil, false
}

// Contains reports whether the attribute is present.
func (a *Attributes) Contains(id AttributeID) bool {
	return a.indexOf(AName(id)) >= 0
}

// ContainsQ reports whether the qualified attribute is present.
func (a *Attributes) ContainsQ(name QName) bool {
	return a.indexOf(name) >= 0
}

// Each visits attributes in order. Returning false stops the iteration.
func (a *Attributes) Each(visit func(*Attribute) bool) {
	for i := range a.list {
		if !visit(&a.list[i]) {
			return
		}
	}
}

// Set inserts or replaces a known unprefixed attribute.
func (a *Attributes) Set(id AttributeID, v Value) error {
	return a.SetQ(AName(id), v)
}

// SetQ inserts or replaces an attribute under a qualified name, keeping the
// cross-link index in step: link targets of the old value are released, link
// targets of the new value acquired.
func (a *Attributes) SetQ(name QName, v Value) error {
	if a.owner != nil && a.owner.kind != KindElement && a.owner.kind != KindDeclaration {
		return ErrNotAnElement
	}

	if i := a.indexOf(name); i >= 0 {
		a.releaseLinks(&a.list[i])
		a.list[i].Value = v
		a.acquireLinks(&a.list[i])
		return nil
	}
	a.list = append(a.list, Attribute{Name: name, Value: v, Visible: true})
	a.acquireLinks(&a.list[len(a.list)-1])
	return nil
}

// SetRaw parses raw into the attribute's typed form and sets it. When the
// typed parser rejects the value the set is a no-op: the previous value and
// the link index are untouched.
func (a *Attributes) SetRaw(id AttributeID, raw string) error {
	v, err := ParseValue(id, raw)
	if err != nil {
		return &InvalidAttributeValueError{Attr: id.String(), Value: raw, Cause: err}
	}
	return a.Set(id, v)
}

// Remove drops a known unprefixed attribute.
func (a *Attributes) Remove(id AttributeID) bool {
	return a.RemoveQ(AName(id))
}

// RemoveQ drops a qualified attribute, releasing its link targets.
func (a *Attributes) RemoveQ(name QName) bool {
	i := a.indexOf(name)
	if i < 0 {
		return false
	}
	a.releaseLinks(&a.list[i])
	a.list = append(a.list[:i], a.list[i+1:]...)
	return true
}

// SetVisible toggles the hidden flag of an existing attribute.
func (a *Attributes) SetVisible(id AttributeID, visible bool) bool {
	if i := a.indexOf(AName(id)); i >= 0 {
		a.list[i].Visible = visible
		return true
	}
	return false
}

func (a *Attributes) acquireLinks(attr *Attribute) {
	if a.owner == nil {
		return
	}
	for _, t := range linkTargets(attr.Value) {
		t.addReferrer(a.owner, attr.Name)
	}
}

func (a *Attributes) releaseLinks(attr *Attribute) {
	if a.owner == nil {
		return
	}
	for _, t := range linkTargets(attr.Value) {
		t.dropReferrer(a.owner, attr.Name)
	}
}

// breakLink rewrites the attribute stored under name after its target was
// removed: FuncIRI paints fall back to their fallback (or none), every other
// link-valued attribute is dropped.
func (a *Attributes) breakLink(name QName, target *Node) {
	i := a.indexOf(name)
	if i < 0 {
		return
	}
	attr := &a.list[i]

	if p, ok := attr.Value.(Paint); ok && p.Kind == PaintFuncIRI && p.Link == target {
		if p.HasFallback {
			switch p.Fallback.Kind {
			case FallbackNone:
				attr.Value = None{}
			case FallbackCurrentColor:
				attr.Value = CurrentColor{}
			default:
				attr.Value = p.Fallback.Color
			}
		} else {
			attr.Value = None{}
		}
		return
	}

	for _, t := range linkTargets(attr.Value) {
		if t == target {
			a.list = append(a.list[:i], a.list[i+1:]...)
			return
		}
	}
}
