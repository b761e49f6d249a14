package ir

// Visit calls f on y before (isPost false) and after (isPost true) its
// children. Children are visited only if the pre call returns true. The
// children of an object are its pairs, and the children of a pair are its name
// and value.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		if y.Type == NameValueType {
			if err := y.Name.Visit(f); err != nil {
				return err
			}
			if err := y.Value.Visit(f); err != nil {
				return err
			}
		}
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
