package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/services"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func (a *App) Profile(ctx context.Context, _ []string) error {
	st, err := a.profile.Load(ctx)
	if err != nil {
		return a.fail(err, "error.profileLoad")
	}
	a.printProfile(st.Data)
	return nil
}

func (a *App) printProfile(p services.Profile) {
	e := p.Employee
	a.println("==", p.DisplayName(), "==")
	if p.PhotoURL != "" {
		a.println("Photo:", p.PhotoURL)
	}

	a.println("--", a.t("profile.jobInfo"), "--")
	a.printf("%-26s %s\n", a.t("profile.department"), e.Department)
	a.printf("%-26s %s\n", "Designation", e.Designation)
	a.printf("%-26s %s\n", a.t("profile.dateOfJoin"), e.DateOfJoin)

	a.println("--", a.t("profile.personalInfo"), "--")
	a.printf("%-26s %s\n", a.t("profile.contact"), e.ContactNumber)
	a.printf("%-26s %s\n", a.t("profile.email"), e.Email)
	a.printf("%-26s %s\n", a.t("profile.address"), e.PresentAddress)
	a.printf("%-26s %s\n", a.t("profile.emergencyName"), e.EmergencyContactName)
	a.printf("%-26s %s\n", a.t("profile.emergencyNumber"), e.EmergencyContactNumber)
}

// EditProfile prompts for the five editable fields, prefilled with the
// current values, and sends them.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	cur := a.profile.State()
	if !cur.Loaded() || cur.Data.Employee.EmpNo.String() != a.session.EmpNo() {
		var err error
		if cur, err = a.profile.Load(ctx); err != nil {
			return a.fail(err, "error.profileLoad")
		}
	}

	a.println("==", a.t("profile.editProfile"), "==")
	upd := models.ProfileUpdateFrom(cur.Data.Employee)
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"profile.contact", &upd.ContactNumber},
		{"profile.email", &upd.Email},
		{"profile.address", &upd.PresentAddress},
		{"profile.emergencyNumber", &upd.EmergencyContactNumber},
		{"profile.emergencyName", &upd.EmergencyContactName},
	} {
		v, err := getWithDefault(a.reader, a.t(f.key), *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	p, err := a.profileService.Update(ctx, upd)
	if err != nil {
		if errors.Is(err, common.ErrMissingFields) {
			a.println(a.t("error.missingFields")+":", a.t("error.allFieldsRequired"))
			return err
		}
		return a.fail(err, "error.updateFailed")
	}
	a.profile.Set(p)
	a.println(a.t("toast.profileUpdated"))
	return nil
}
