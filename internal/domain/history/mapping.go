// Package history holds the pure parts of the history subsystem: the mapping
// of legacy class names and the folding of legacy attribute rows.
package history

import "slices"

// renamed maps names written by older releases to the current entity and
// property type names. Current names map to themselves implicitly.
var renamed = map[string]string{
	"de.micromata.projectforge.user.PFUserDO":                         "User",
	"org.projectforge.user.PFUserDO":                                  "User",
	"org.projectforge.framework.persistence.user.entities.PFUserDO":   "User",
	"org.projectforge.user.GroupDO":                                   "Group",
	"org.projectforge.framework.persistence.user.entities.GroupDO":    "Group",
	"org.projectforge.fibu.KundeDO":                                   "Customer",
	"org.projectforge.business.fibu.KundeDO":                          "Customer",
	"org.projectforge.fibu.AuftragDO":                                 "Order",
	"org.projectforge.business.fibu.AuftragDO":                        "Order",
	"org.projectforge.fibu.AuftragsPositionDO":                        "OrderPosition",
	"org.projectforge.business.fibu.AuftragsPositionDO":               "OrderPosition",
	"org.projectforge.fibu.RechnungDO":                                "Invoice",
	"org.projectforge.business.fibu.RechnungDO":                       "Invoice",
	"org.projectforge.fibu.RechnungsPositionDO":                       "InvoicePosition",
	"org.projectforge.business.fibu.RechnungsPositionDO":              "InvoicePosition",
	"de.micromata.fibu.AuftragsStatus":                                "OrderStatus",
	"org.projectforge.fibu.AuftragsStatus":                            "OrderStatus",
	"org.projectforge.business.fibu.AuftragsStatus":                   "OrderStatus",
	"de.micromata.fibu.AuftragsPositionsStatus":                       "OrderPositionStatus",
	"org.projectforge.fibu.AuftragsPositionsStatus":                   "OrderPositionStatus",
	"org.projectforge.business.fibu.AuftragsPositionsStatus":          "OrderPositionStatus",
	"org.projectforge.fibu.PaymentType":                               "PaymentType",
	"org.projectforge.business.fibu.PaymentType":                      "PaymentType",
	"de.micromata.fibu.KundeStatus":                                   "CustomerStatus",
	"org.projectforge.fibu.KundeStatus":                               "CustomerStatus",
	"org.projectforge.business.fibu.KundeStatus":                      "CustomerStatus",
	"de.micromata.fibu.RechnungStatus":                                "InvoiceStatus",
	"org.projectforge.fibu.RechnungStatus":                            "InvoiceStatus",
	"org.projectforge.business.fibu.RechnungStatus":                   "InvoiceStatus",
	"de.micromata.genome.db.jpa.history.entities.PropertyOpType":      "PropertyOpType",
	"org.projectforge.framework.persistence.history.PropertyOpType":   "PropertyOpType",
	"java.lang.String":                                                "string",
	"java.lang.Integer":                                               "int",
	"java.lang.Boolean":                                               "boolean",
	"java.math.BigDecimal":                                            "decimal",
	"java.time.LocalDate":                                             "date",
	"java.util.Date":                                                  "timestamp",
	"java.sql.Timestamp":                                              "timestamp",
	"org.projectforge.framework.persistence.user.entities.PFUserDO[]": "User",
	"org.projectforge.framework.persistence.user.entities.GroupDO[]":  "Group",
	"org.projectforge.business.fibu.AuftragsPositionDO[]":             "OrderPosition",
	"org.projectforge.business.fibu.RechnungsPositionDO[]":            "InvoicePosition",
}

// removed lists classes whose history can no longer be shown.
var removed = []string{
	"org.projectforge.business.vacation.model.VacationCalendarDO",
	"org.projectforge.framework.persistence.user.entities.TenantDO",
	"org.projectforge.gantt.GanttDependencyType",
	"org.projectforge.plugins.eed.model.EmployeeConfigurationDO",
	"org.projectforge.plugins.ffp.model.FFPAccountingDO",
	"org.projectforge.plugins.ffp.model.FFPDebtDO",
	"org.projectforge.plugins.ffp.model.FFPEventDO",
	"org.projectforge.plugins.skillmatrix.SkillDO",
	"org.projectforge.plugins.skillmatrix.SkillRating",
	"org.projectforge.plugins.skillmatrix.SkillRatingDO",
	"org.projectforge.plugins.skillmatrix.TrainingAttendeeDO",
	"org.projectforge.plugins.skillmatrix.TrainingDO",
}

// CurrentName returns the current name for a possibly legacy class name.
func CurrentName(name string) string {
	if current, ok := renamed[name]; ok {
		return current
	}

	return name
}

// IsRemoved reports whether the class no longer exists.
func IsRemoved(name string) bool {
	return slices.Contains(removed, name)
}

// StoredNames returns every name under which history of the current entity
// name may have been written, the current name first.
func StoredNames(current string) []string {
	names := []string{current}
	for legacy, name := range renamed {
		if name == current {
			names = append(names, legacy)
		}
	}
	slices.Sort(names[1:])

	return names
}
