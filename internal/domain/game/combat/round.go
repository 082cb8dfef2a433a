package combat

import (
	"github.com/KirkDiggler/text-rpg/internal/dice"
	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// ResolveRound plays one round: the player's action, then the enemy's
// counter-attack unless the encounter already ended. The player's action
// resolves first, so an enemy brought to zero never strikes back.
//
// It returns the events produced this round.
func (e *Encounter) ResolveRound(c *character.Character, action Action, roller dice.Roller) ([]Event, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}
	if roller == nil {
		return nil, dnderr.InvalidArgument("roller is required")
	}
	if e.Status.IsTerminal() {
		return nil, dnderr.InvalidArgumentf("encounter %s is already over (%s)", e.ID, e.Status)
	}
	switch action {
	case ActionAttack, ActionUseConsumable, ActionFlee:
	default:
		return nil, dnderr.InvalidChoicef("unknown action %q", action).WithMeta("action", string(action))
	}

	mark := len(e.Log)
	e.Round++

	var err error
	switch action {
	case ActionAttack:
		err = e.playerAttack(c, roller)
	case ActionUseConsumable:
		err = e.useConsumable(c, roller)
	case ActionFlee:
		var escaped bool
		escaped, err = e.flee(c, roller)
		if err == nil && escaped {
			e.end(StatusEscaped)
			return e.EventsSince(mark), nil
		}
	}
	if err != nil {
		return e.EventsSince(mark), err
	}

	if e.EnemyHealth <= 0 {
		e.end(StatusVictory)
		e.AddEvent(EventVictory, 0, "", "You defeated the enemy!")
		return e.EventsSince(mark), nil
	}

	if err := e.enemyAttack(c, roller); err != nil {
		return e.EventsSince(mark), err
	}

	if c.IsDefeated() {
		e.end(StatusDefeat)
		e.AddEvent(EventDefeat, 0, "", "You were defeated.")
	}
	return e.EventsSince(mark), nil
}

func (e *Encounter) playerAttack(c *character.Character, roller dice.Roller) error {
	weapon := c.EquippedWeapon()
	if weapon == nil {
		damage, err := roller.Between(UnarmedMinDamage, UnarmedMaxDamage)
		if err != nil {
			return dnderr.Wrap(err, "failed to roll unarmed damage")
		}
		e.EnemyHealth -= damage
		e.AddEvent(EventDamageDealt, damage, "", "You punch the enemy for %d damage. Enemy health: %d",
			damage, e.DisplayEnemyHealth())
		return nil
	}

	usable, justBroke := weapon.Use()
	if !usable {
		if justBroke {
			e.AddEvent(EventWeaponBroken, 0, weapon.Name, "Your %s breaks! The swing deals no damage.", weapon.Name)
		} else {
			e.AddEvent(EventWeaponBroken, 0, weapon.Name, "Your %s is broken and deals no damage.", weapon.Name)
		}
		return nil
	}

	damage, err := rollWeaponDamage(weapon, roller)
	if err != nil {
		return err
	}
	critical, err := roller.Chance(weapon.CriticalChance)
	if err != nil {
		return dnderr.Wrap(err, "failed to roll critical hit")
	}
	if critical {
		damage *= 2
		e.AddEvent(EventCriticalHit, damage, weapon.Name, "Critical hit with your %s!", weapon.Name)
	}

	e.EnemyHealth -= damage
	e.AddEvent(EventDamageDealt, damage, weapon.Name, "You hit the enemy with your %s for %d damage. Enemy health: %d",
		weapon.Name, damage, e.DisplayEnemyHealth())
	return nil
}

func rollWeaponDamage(weapon *item.Weapon, roller dice.Roller) (int, error) {
	damage, err := roller.Between(weapon.Damage.Min, weapon.Damage.Max)
	if err != nil {
		return 0, dnderr.Wrapf(err, "failed to roll damage for %s", weapon.Name)
	}
	return damage, nil
}

func (e *Encounter) useConsumable(c *character.Character, roller dice.Roller) error {
	var potion *item.Consumable
	for _, it := range c.Inventory() {
		if item.IsHealthPotion(it) {
			potion = it.(*item.Consumable)
			break
		}
	}
	if potion == nil {
		e.AddEvent(EventNothingToUse, 0, "", "You have nothing to use.")
		return nil
	}

	// Roll before removing so a failed roll keeps the potion
	amount, err := roller.Between(potion.Heal.Min, potion.Heal.Max)
	if err != nil {
		return dnderr.Wrap(err, "failed to roll healing")
	}
	c.TakeFirst(func(it item.Item) bool { return it == item.Item(potion) })

	healed := c.Heal(amount)
	e.AddEvent(EventHealed, healed, potion.Name, "You drink a %s and recover %d health. Health: %d",
		potion.Name, healed, c.Health)
	return nil
}

func (e *Encounter) flee(c *character.Character, roller dice.Roller) (bool, error) {
	roll, err := roller.Roll(1, 100, 0)
	if err != nil {
		return false, dnderr.Wrap(err, "failed to roll flee")
	}

	if roll.Total <= FleeChance(c.Dexterity) {
		e.AddEvent(EventEscaped, 0, "", "You successfully ran away!")
		return true, nil
	}
	e.AddEvent(EventFleeFailed, 0, "", "You failed to run away!")
	return false, nil
}

func (e *Encounter) enemyAttack(c *character.Character, roller dice.Roller) error {
	damage, err := roller.Between(1, EnemyMaxDamage(e.EnemyStrength))
	if err != nil {
		return dnderr.Wrap(err, "failed to roll enemy damage")
	}

	c.TakeDamage(damage)
	e.AddEvent(EventEnemyAttack, damage, "", "The enemy strikes you for %d damage. Health: %d",
		damage, max(c.Health, 0))
	return nil
}

// ResolveByStrength settles an encounter in one comparison: a character at
// least as strong as the enemy wins, otherwise loses. No health changes hands.
func ResolveByStrength(id string, c *character.Character, enemyStrength int) (*Encounter, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	e := NewEncounter(id, enemyStrength)
	e.Round = 1
	if c.Strength >= enemyStrength {
		e.EnemyHealth = 0
		e.end(StatusVictory)
		e.AddEvent(EventVictory, 0, "", "You defeated the enemy!")
		return e, nil
	}

	e.end(StatusDefeat)
	e.AddEvent(EventDefeat, 0, "", "You were defeated.")
	return e, nil
}
