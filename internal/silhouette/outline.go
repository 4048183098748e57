package silhouette

import (
	"fmt"

	"lg/bodyviz-api/internal/body"
)

const (
	frontHead = `<path id="head" d="M 120,40 C 105,40 94,52 94,70 C 94,88 106,100 120,100 C 134,100 146,88 146,70 C 146,52 135,40 120,40"/>`
	sideHead  = `<path id="head" d="M 120,40 C 100,40 88,55 88,72 C 88,90 102,100 120,100 C 142,100 148,82 148,68 C 148,48 138,40 120,40"/>`

	handRadius = 5.5
	handY      = 365.0
)

var sides = []struct {
	name string
	sign float64
}{
	{"left", -1},
	{"right", 1},
}

func frontPaths(s body.Scales) []string {
	neck := dim(s, body.SegNeck)
	shoulders := dim(s, body.SegShoulders)
	chest := dim(s, body.SegChest)
	waist := dim(s, body.SegWaist)
	hips := dim(s, body.SegHips)
	thighs := dim(s, body.SegThighs)
	arms := dim(s, body.SegArms)

	out := []string{frontHead}

	yoke := new(pathBuilder).
		M(centerX-neck/2, 92).
		C(centerX-neck*0.8, 94, centerX-shoulders*0.6, 96, centerX-shoulders, 105).
		L(centerX+shoulders, 105).
		C(centerX+shoulders*0.6, 96, centerX+neck*0.8, 94, centerX+neck/2, 92)
	out = append(out, yoke.element("yoke"))

	torso := new(pathBuilder).
		M(centerX, 105).
		C(centerX-shoulders, 105, centerX-chest, 145, centerX-chest, 195).
		C(centerX-chest, 250, centerX-waist, 290, centerX-waist, 330).
		C(centerX-waist, 370, centerX-hips, 390, centerX-hips, 420).
		L(centerX+hips, 420).
		C(centerX+hips, 390, centerX+waist, 370, centerX+waist, 330).
		C(centerX+waist, 290, centerX+chest, 250, centerX+chest, 195).
		C(centerX+chest, 145, centerX+shoulders, 105, centerX, 105)
	out = append(out, torso.element("torso"))

	for _, sd := range sides {
		arm := new(pathBuilder).
			M(mirror(sd.sign, shoulders), 105).
			C(mirror(sd.sign, shoulders+arms*1.2), 150,
				mirror(sd.sign, shoulders+arms), 250,
				mirror(sd.sign, shoulders+arms*0.8), 320).
			Q(mirror(sd.sign, shoulders+arms), 340, mirror(sd.sign, shoulders+arms*1.1), 360).
			L(mirror(sd.sign, shoulders+arms*0.4), 360).
			Q(mirror(sd.sign, shoulders), 340, mirror(sd.sign, shoulders-10), 320)
		out = append(out, arm.element("arm_"+sd.name))
		out = append(out, fmt.Sprintf(`<circle id="hand_%s" cx="%.2f" cy="%.2f" r="%.2f"/>`,
			sd.name, mirror(sd.sign, shoulders+arms*0.75), handY, handRadius))
	}

	for _, sd := range sides {
		leg := new(pathBuilder).
			M(mirror(sd.sign, hips-8), 420).
			C(mirror(sd.sign, hips+4), 430,
				mirror(sd.sign, thighs*1.4), 455,
				mirror(sd.sign, thighs*1.2), 485).
			L(mirror(sd.sign, thighs*0.3), 485).
			C(mirror(sd.sign, thighs*0.3), 465, mirror(sd.sign, 10), 445, mirror(sd.sign, 10), 420)
		out = append(out, leg.element("leg_"+sd.name))
	}
	return out
}

// sidePaths draws the profile facing left: chest and belly extend to the
// left of center, buttocks to the right.
func sidePaths(s body.Scales) []string {
	neck := dim(s, body.SegNeck)
	chest := dim(s, body.SegChest)
	belly := dim(s, body.SegBelly)
	butt := dim(s, body.SegButtocks)
	thighs := dim(s, body.SegThighs)

	torso := new(pathBuilder).
		M(centerX, 100).
		C(centerX-chest, 110, centerX-chest*1.3, 165, centerX-chest*1.15, 235).
		C(centerX-belly, 305, centerX-belly, 370, centerX-chest, 420).
		L(centerX+butt, 420).
		C(centerX+butt*1.5, 370, centerX+butt*1.2, 205, centerX+neck, 100)

	leg := new(pathBuilder).
		M(centerX-chest+18, 420).
		C(centerX-belly*0.4, 445, centerX-thighs*1.15, 470, centerX-thighs, 485).
		L(centerX+butt*0.6, 485).
		C(centerX+butt*0.9, 465, centerX+butt, 445, centerX+butt, 420)

	return []string{sideHead, torso.element("torso"), leg.element("leg")}
}
