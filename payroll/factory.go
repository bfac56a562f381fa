/*
factory.go - Employee factory

PURPOSE:
  Maps a category label to an employee record wired to the correct rule set.
  The label match is the ONLY validation the factory performs: field-level
  validation (positive id, non-blank names, non-negative salary) is the
  record's own construction invariant and applies on every path.
*/
package payroll

// NewEmployee creates a compensation record for the given category label.
// The label is matched case-insensitively against REGULAR and CONTRACTUAL;
// any other value fails with ErrUnknownCategory and produces no record.
func NewEmployee(category string, id EmployeeID, firstName, lastName, position string, basicSalary Money) (*Employee, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return newEmployee(c, id, firstName, lastName, position, basicSalary)
}

// NewContractualEmployee creates a contractual record with its
// category-specific attributes. Both fields are informational only.
func NewContractualEmployee(id EmployeeID, firstName, lastName, position string, basicSalary Money, contractEndDate, projectAssignment string) (*Employee, error) {
	e, err := newEmployee(CategoryContractual, id, firstName, lastName, position, basicSalary)
	if err != nil {
		return nil, err
	}
	e.ContractEndDate = contractEndDate
	e.ProjectAssignment = projectAssignment
	return e, nil
}
