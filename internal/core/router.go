package core

import "medbridge/pkg"

// RouteLanguages maps the speaker role onto the (source, target) pair for a
// message: the doctor authors in doctorLang for the patient, the patient
// authors in patientLang for the doctor.
func RouteLanguages(role pkg.Role, doctorLang, patientLang string) (source, target string) {
	if role == pkg.RoleDoctor {
		return doctorLang, patientLang
	}
	return patientLang, doctorLang
}
